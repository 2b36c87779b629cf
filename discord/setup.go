package discord

import (
	"fmt"
	"os"
	"time"

	"github.com/KASHINO-SHINO/SYOUYA/config"
	"github.com/KASHINO-SHINO/SYOUYA/content"
	"github.com/KASHINO-SHINO/SYOUYA/database"
	"github.com/KASHINO-SHINO/SYOUYA/logging"
	"github.com/KASHINO-SHINO/SYOUYA/metrics"
	"github.com/KASHINO-SHINO/SYOUYA/persona"
	"github.com/KASHINO-SHINO/SYOUYA/reminders"
	"github.com/KASHINO-SHINO/SYOUYA/types"
	"github.com/bwmarrin/discordgo"
	"github.com/davecgh/go-spew/spew"
)

// apology is what users see when a handler fails unexpectedly. Handlers
// never let a failure escape past the event loop.
const apology = "すまん、エラーが発生した。もう一度試してくれ"

// Client owns the Discord session and everything the handlers need.
type Client struct {
	Session *discordgo.Session

	store     *content.Store
	engine    *persona.Engine
	reminders *reminders.Store
	db        database.DeliveryWriter
	character types.Character
	settings  types.Settings
	logger    *logging.Logger
	startedAt time.Time
}

// Setup connects to Discord, registers the slash commands, and installs
// the interaction and prefix-command handlers. The db writer may be nil
// when no delivery history is configured.
func Setup(cfg *config.Config, store *content.Store, engine *persona.Engine, remStore *reminders.Store, db database.DeliveryWriter, logger *logging.Logger) (Client, error) {
	if logger == nil {
		logger = logging.Default()
	}

	authToken := os.Getenv("DISCORD_TOKEN")
	if authToken == "" {
		return Client{}, fmt.Errorf("DISCORD_TOKEN environment variable is required")
	}

	session, err := discordgo.New("Bot " + authToken)
	if err != nil {
		return Client{}, fmt.Errorf("error creating discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	c := Client{
		Session:   session,
		store:     store,
		engine:    engine,
		reminders: remStore,
		db:        db,
		character: cfg.Character,
		settings:  cfg.Settings,
		logger:    logger,
		startedAt: time.Now(),
	}

	session.AddHandler(c.handleMessage)

	commandHandlers := c.MakeCommandHandlers()
	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		metrics.DiscordMessageRecieved.Add(1)
		defer func() {
			if r := recover(); r != nil {
				spew.Dump(r)
				c.logger.Error("panic in interaction handler", "command", i.ApplicationCommandData().Name)
				c.respondEphemeral(s, i, apology)
			}
		}()
		if h, ok := commandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	})

	// opens websocket connection
	err = session.Open()
	if err != nil {
		return Client{}, fmt.Errorf("error opening connection to discord: %w", err)
	}
	for _, v := range AddCommands() {
		_, err := session.ApplicationCommandCreate(session.State.User.ID, "", v)
		if err != nil {
			return Client{}, fmt.Errorf("error creating command: %w", err)
		}
	}
	logger.Info("discord bot connected", "character", cfg.Character.Name, "prefix", cfg.Settings.CommandPrefix)

	return c, nil
}

// respondEphemeral answers an interaction with a message only the caller
// can see. Errors are logged and swallowed.
func (d Client) respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		d.logger.Error("error responding to interaction", "error", err.Error())
		return
	}
	metrics.DiscordMessageSent.Add(1)
}
