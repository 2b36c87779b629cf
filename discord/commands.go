package discord

import "github.com/bwmarrin/discordgo"

// SlashCommands registered with Discord on startup
func AddCommands() []*discordgo.ApplicationCommand {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "remind",
			Description: "設楽翔也からのカスタムリマインダーを設定",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "time",
					Description: "リマインド時刻（例: 14:30）",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message",
					Description: "リマインドする内容",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "where",
					Description: "場所（任意）",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "frequency",
					Description: "頻度",
					Required:    false,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "毎日", Value: "daily"},
						{Name: "平日", Value: "weekdays"},
						{Name: "週末", Value: "weekends"},
						{Name: "一回のみ", Value: "once"},
					},
				},
			},
		},
		{
			Name:        "remind_test",
			Description: "カスタムリマインダーのテスト送信",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message",
					Description: "リマインドする内容",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "where",
					Description: "場所（任意）",
					Required:    false,
				},
			},
		},
	}
	return commands
}

// MakeCommandHandlers returns a map of command names to their respective functions
func (d Client) MakeCommandHandlers() map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"remind":      d.remind,
		"remind_test": d.remindTest,
	}
}

// optionMap indexes interaction options by name for lookup.
func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// interactionUserID works for both guild and DM interactions.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
