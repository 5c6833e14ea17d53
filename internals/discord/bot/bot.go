package bot

import (
	"log/slog"

	dgo "github.com/bwmarrin/discordgo"

	"babelcord/internals/msgstore"
	"babelcord/internals/topic"
	"babelcord/internals/translator"
)

type Bot struct {
	token              string
	store              msgstore.Store
	translator         translator.Translator
	defaults           topic.Config
	session            *dgo.Session
	logger             *slog.Logger
	registeredCommands []*dgo.ApplicationCommand
}

func New(
	token string,
	store msgstore.Store,
	t translator.Translator,
	defaults topic.Config,
	logger *slog.Logger,
) (*Bot, error) {
	discord, err := dgo.New("Bot " + token)
	if err != nil {
		return &Bot{}, err
	}

	discord.Identify.Intents = dgo.IntentGuildMessages |
		dgo.IntentDirectMessages |
		dgo.IntentMessageContent

	return &Bot{
		token:              token,
		store:              store,
		translator:         t,
		defaults:           defaults,
		session:            discord,
		logger:             logger,
		registeredCommands: make([]*dgo.ApplicationCommand, 0),
	}, nil
}

func (b *Bot) Start() error {
	b.registerEventHandlers()

	if err := b.session.Open(); err != nil {
		return err
	}

	if err := b.registerCommands(); err != nil {
		// Don't leave the websocket session open when startup fails
		// halfway; the caller only stops a bot that started.
		_ = b.session.Close()
		return err
	}
	return nil
}

func (b *Bot) Stop() error {
	if err := b.removeCommands(); err != nil {
		return err
	}
	return b.session.Close()
}
