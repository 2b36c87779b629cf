package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KASHINO-SHINO/SYOUYA/metrics"
	"github.com/bwmarrin/discordgo"
	"github.com/davecgh/go-spew/spew"
)

// handleMessage dispatches prefix commands: reminder, announce, help,
// status, character. Anything not starting with the configured prefix is
// ignored. A panicking handler is reduced to an apology in-channel.
func (d Client) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, d.settings.CommandPrefix) {
		return
	}
	metrics.DiscordMessageRecieved.Add(1)

	fields := strings.Fields(strings.TrimPrefix(m.Content, d.settings.CommandPrefix))
	if len(fields) == 0 {
		return
	}
	name := fields[0]
	args := fields[1:]

	defer func() {
		if r := recover(); r != nil {
			spew.Dump(r)
			d.logger.Error("panic in prefix command handler", "command", name)
			d.sendFallbackResponse(m.ChannelID, apology)
		}
	}()

	switch name {
	case "reminder":
		d.prefixReminder(s, m, args)
	case "announce":
		d.prefixAnnounce(s, m, args)
	case "help":
		d.prefixHelp(s, m)
	case "status":
		d.prefixStatus(s, m)
	case "character":
		d.prefixCharacter(s, m)
	}
}

// prefixReminder posts one random reminder, optionally from a category.
func (d Client) prefixReminder(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	start := time.Now()
	metrics.DiscordCommandTotal.WithLabelValues("reminder").Inc()
	defer func() {
		metrics.DiscordCommandDuration.WithLabelValues("reminder").Observe(time.Since(start).Seconds())
	}()

	category := ""
	if len(args) > 0 {
		category = args[0]
	}

	message := d.store.Reminder(category)
	embed := d.characterEmbed(message, emojiReminder, colorReminder)
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		d.logger.Error("error sending reminder", "error", err.Error(), "channelID", m.ChannelID)
		metrics.DiscordCommandErrors.WithLabelValues("reminder").Inc()
		return
	}
	metrics.DiscordMessageSent.Add(1)
	d.acknowledge(s, m)
}

// prefixAnnounce posts one random announcement, optionally from a category.
func (d Client) prefixAnnounce(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	start := time.Now()
	metrics.DiscordCommandTotal.WithLabelValues("announce").Inc()
	defer func() {
		metrics.DiscordCommandDuration.WithLabelValues("announce").Observe(time.Since(start).Seconds())
	}()

	category := ""
	if len(args) > 0 {
		category = args[0]
	}

	message := d.store.Announcement(category)
	embed := d.characterEmbed(message, emojiAnnouncement, colorAnnouncement)
	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		d.logger.Error("error sending announcement", "error", err.Error(), "channelID", m.ChannelID)
		metrics.DiscordCommandErrors.WithLabelValues("announce").Inc()
		return
	}
	metrics.DiscordMessageSent.Add(1)
	d.acknowledge(s, m)
}

func (d Client) prefixHelp(s *discordgo.Session, m *discordgo.MessageCreate) {
	start := time.Now()
	metrics.DiscordCommandTotal.WithLabelValues("help").Inc()
	defer func() {
		metrics.DiscordCommandDuration.WithLabelValues("help").Observe(time.Since(start).Seconds())
	}()

	prefix := d.settings.CommandPrefix
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🤖 %s Bot Commands", d.character.Name),
		Description: "Konnichiwa! Here are my available commands:",
		Color:       colorHelp,
		Timestamp:   time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   prefix + " reminder [category]",
				Value:  "Send a random reminder\nCategories: " + strings.Join(d.store.ReminderCategories(), ", "),
				Inline: false,
			},
			{
				Name:   prefix + " announce [category]",
				Value:  "Send a random announcement\nCategories: " + strings.Join(d.store.AnnouncementCategories(), ", "),
				Inline: false,
			},
			{Name: prefix + " character", Value: "Show information about my character", Inline: true},
			{Name: prefix + " status", Value: "Show bot status and health", Inline: true},
			{Name: prefix + " help", Value: "Show this help message", Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: d.character.FooterText()},
	}
	if d.character.AvatarURL != "" {
		embed.Footer.IconURL = d.character.AvatarURL
	}

	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		d.logger.Error("error sending help", "error", err.Error(), "channelID", m.ChannelID)
		metrics.DiscordCommandErrors.WithLabelValues("help").Inc()
		return
	}
	metrics.DiscordMessageSent.Add(1)
}

func (d Client) prefixStatus(s *discordgo.Session, m *discordgo.MessageCreate) {
	start := time.Now()
	metrics.DiscordCommandTotal.WithLabelValues("status").Inc()
	defer func() {
		metrics.DiscordCommandDuration.WithLabelValues("status").Observe(time.Since(start).Seconds())
	}()

	scheduler := "Disabled"
	if d.settings.Schedule.Reminders.Enabled || d.settings.Schedule.Announcements.Enabled {
		scheduler = "Running ✅"
	}

	embed := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("📊 %s Bot Status", d.character.Name),
		Color:     colorStatus,
		Timestamp: time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🤖 Bot Status", Value: "Online and healthy! ✅", Inline: true},
			{Name: "📅 Scheduler", Value: scheduler, Inline: true},
			{Name: "⏱️ Uptime", Value: time.Since(d.startedAt).Round(time.Second).String(), Inline: true},
			{Name: "📝 Custom Reminders", Value: fmt.Sprintf("%d registered", d.reminders.Len()), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Last updated: " + time.Now().Format(time.RFC3339)},
	}
	if d.character.AvatarURL != "" {
		embed.Footer.IconURL = d.character.AvatarURL
	}

	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		d.logger.Error("error sending status", "error", err.Error(), "channelID", m.ChannelID)
		metrics.DiscordCommandErrors.WithLabelValues("status").Inc()
		return
	}
	metrics.DiscordMessageSent.Add(1)
}

func (d Client) prefixCharacter(s *discordgo.Session, m *discordgo.MessageCreate) {
	start := time.Now()
	metrics.DiscordCommandTotal.WithLabelValues("character").Inc()
	defer func() {
		metrics.DiscordCommandDuration.WithLabelValues("character").Observe(time.Since(start).Seconds())
	}()

	traits := make([]string, 0, len(d.character.Traits))
	for _, trait := range d.character.Traits {
		traits = append(traits, "• "+trait)
	}

	phrases := d.character.SpeakingStyle.CommonPhrases
	if len(phrases) > 3 {
		phrases = phrases[:3]
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎭 Meet %s!", d.character.Name),
		Description: d.character.Personality,
		Color:       colorCharacter,
		Timestamp:   time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "✨ Personality Traits", Value: strings.Join(traits, "\n"), Inline: false},
			{
				Name:   "🗣️ Speaking Style",
				Value:  fmt.Sprintf("Tone: %s\nEmoji Usage: %s", d.character.SpeakingStyle.Tone, d.character.SpeakingStyle.EmojiUsage),
				Inline: true,
			},
			{Name: "💬 Common Phrases", Value: strings.Join(phrases, "\n"), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: d.character.FooterText()},
	}
	if d.character.AvatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: d.character.AvatarURL}
		embed.Footer.IconURL = d.character.AvatarURL
	}

	if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
		d.logger.Error("error sending character info", "error", err.Error(), "channelID", m.ChannelID)
		metrics.DiscordCommandErrors.WithLabelValues("character").Inc()
		return
	}
	metrics.DiscordMessageSent.Add(1)
}

// acknowledge reacts to the invoking message with a checkmark.
func (d Client) acknowledge(s *discordgo.Session, m *discordgo.MessageCreate) {
	if err := s.MessageReactionAdd(m.ChannelID, m.ID, "✅"); err != nil {
		d.logger.Debug("error adding reaction", "error", err.Error(), "messageID", m.ID)
	}
}

// sendFallbackResponse sends a fallback message when errors occur
func (d Client) sendFallbackResponse(channelID, message string) {
	_, err := d.Session.ChannelMessageSend(channelID, message)
	if err != nil {
		d.logger.Error("error sending fallback response", "error", err.Error(), "channelID", channelID)
	} else {
		metrics.DiscordMessageSent.Add(1)
	}
}
