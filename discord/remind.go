package discord

import (
	"time"

	"github.com/KASHINO-SHINO/SYOUYA/metrics"
	"github.com/KASHINO-SHINO/SYOUYA/reminders"
	"github.com/bwmarrin/discordgo"
	"github.com/pkg/errors"
)

// remind registers a custom reminder for the user. The record is stored
// in memory and confirmed, but no loop dispatches it yet.
func (d Client) remind(s *discordgo.Session, i *discordgo.InteractionCreate) {
	start := time.Now()
	metrics.DiscordCommandTotal.WithLabelValues("remind").Inc()
	defer func() {
		metrics.DiscordCommandDuration.WithLabelValues("remind").Observe(time.Since(start).Seconds())
	}()

	opts := optionMap(i.ApplicationCommandData().Options)

	timeStr := opts["time"].StringValue()
	message := opts["message"].StringValue()
	where := ""
	if opt, ok := opts["where"]; ok {
		where = opt.StringValue()
	}
	frequency := "daily"
	if opt, ok := opts["frequency"]; ok {
		frequency = opt.StringValue()
	}

	rec, err := d.reminders.Register(reminders.Request{
		Time:         timeStr,
		Message:      message,
		Where:        where,
		Personalized: d.engine.Personalize(message, where),
		Frequency:    frequency,
		ChannelID:    i.ChannelID,
		UserID:       interactionUserID(i),
	})
	if err != nil {
		if errors.Is(err, reminders.ErrInvalidTime) {
			metrics.CustomReminderRejected.Add(1)
			d.respondEphemeral(s, i, reminders.RejectInvalidTime)
			return
		}
		d.logger.Error("error registering custom reminder", "error", err.Error())
		metrics.DiscordCommandErrors.WithLabelValues("remind").Inc()
		d.respondEphemeral(s, i, apology)
		return
	}

	metrics.CustomReminderRegistered.Add(1)
	d.logger.Info("custom reminder registered", "id", rec.ID, "time", rec.Time, "frequency", rec.Frequency)
	d.respondEphemeral(s, i, reminders.Confirmation(rec))
}

// remindTest renders a personalized reminder immediately, with no
// registration, so users can preview the character's phrasing.
func (d Client) remindTest(s *discordgo.Session, i *discordgo.InteractionCreate) {
	start := time.Now()
	metrics.DiscordCommandTotal.WithLabelValues("remind_test").Inc()
	defer func() {
		metrics.DiscordCommandDuration.WithLabelValues("remind_test").Observe(time.Since(start).Seconds())
	}()

	opts := optionMap(i.ApplicationCommandData().Options)

	message := opts["message"].StringValue()
	where := ""
	if opt, ok := opts["where"]; ok {
		where = opt.StringValue()
	}

	personalized := d.engine.Personalize(message, where)
	embed := d.characterEmbed(personalized, emojiReminder, colorReminder)

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
	if err != nil {
		d.logger.Error("error responding to remind_test command", "error", err.Error())
		metrics.DiscordCommandErrors.WithLabelValues("remind_test").Inc()
		d.respondEphemeral(s, i, apology)
		return
	}
	d.logger.Debug("test reminder sent", "message", message, "where", where)
	metrics.DiscordMessageSent.Add(1)
}
