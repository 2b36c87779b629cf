package discord

import (
	"testing"

	"github.com/KASHINO-SHINO/SYOUYA/types"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestCharacterEmbed(t *testing.T) {
	d := Client{character: types.Character{
		Name:      "設楽翔也",
		AvatarURL: "https://example.com/avatar.png",
		Signature: "- 翔也",
	}}

	embed := d.characterEmbed("朝だぞ", emojiReminder, colorReminder)

	assert.Equal(t, "⏰ 設楽翔也", embed.Title)
	assert.Equal(t, "朝だぞ", embed.Description)
	assert.Equal(t, colorReminder, embed.Color)
	assert.Equal(t, "- 翔也", embed.Footer.Text)
	assert.Equal(t, "https://example.com/avatar.png", embed.Thumbnail.URL)
	assert.Equal(t, "https://example.com/avatar.png", embed.Footer.IconURL)
}

func TestCharacterEmbedWithoutAvatar(t *testing.T) {
	d := Client{character: types.Character{Name: "設楽翔也"}}

	embed := d.characterEmbed("頑張ろうぜ", emojiAnnouncement, colorAnnouncement)

	assert.Equal(t, "📢 設楽翔也", embed.Title)
	assert.Equal(t, "- 設楽翔也", embed.Footer.Text)
	assert.Nil(t, embed.Thumbnail)
	assert.Empty(t, embed.Footer.IconURL)
}

func TestOptionMap(t *testing.T) {
	opts := []*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "time", Type: discordgo.ApplicationCommandOptionString, Value: "14:30"},
		{Name: "message", Type: discordgo.ApplicationCommandOptionString, Value: "洗濯"},
	}

	m := optionMap(opts)

	assert.Equal(t, "14:30", m["time"].StringValue())
	assert.Equal(t, "洗濯", m["message"].StringValue())
	_, ok := m["where"]
	assert.False(t, ok)
}

func TestInteractionUserID(t *testing.T) {
	guild := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{User: &discordgo.User{ID: "member-1"}},
	}}
	assert.Equal(t, "member-1", interactionUserID(guild))

	dm := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		User: &discordgo.User{ID: "dm-1"},
	}}
	assert.Equal(t, "dm-1", interactionUserID(dm))

	empty := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}}
	assert.Empty(t, interactionUserID(empty))
}
