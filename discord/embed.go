package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Embed colors per message kind, carried over from the original bot.
const (
	colorReminder     = 0xFFD700
	colorAnnouncement = 0xFF6B6B
	colorHelp         = 0x4A90E2
	colorStatus       = 0x00FF00
	colorCharacter    = 0xFF69B4
)

const (
	emojiReminder     = "⏰"
	emojiAnnouncement = "📢"
)

// characterEmbed renders a message in the character's frame: emoji-tagged
// title, signature footer, avatar thumbnail when one is configured.
func (d Client) characterEmbed(message, emoji string, color int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       emoji + " " + d.character.Name,
		Description: message,
		Color:       color,
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: d.character.FooterText(),
		},
	}
	if d.character.AvatarURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: d.character.AvatarURL}
		embed.Footer.IconURL = d.character.AvatarURL
	}
	return embed
}
