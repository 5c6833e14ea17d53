package bot

import (
	"log/slog"

	dgo "github.com/bwmarrin/discordgo"

	"babelcord/internals/discord/bot/commands"
)

func (b *Bot) registerCommands() error {
	cs := []commands.Command{
		commands.NewTranslate(b.translator),
		commands.NewSetLang(b.defaults),
	}

	handlers := make(map[string]func(*dgo.Session, *dgo.InteractionCreate) error, len(cs))

	for _, v := range cs {
		cmd, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", v.Info())
		if err != nil {
			return err
		}

		handlers[cmd.Name] = v.Handle
		b.registeredCommands = append(b.registeredCommands, cmd)
	}

	b.session.AddHandler(func(s *dgo.Session, i *dgo.InteractionCreate) {
		h, ok := handlers[i.ApplicationCommandData().Name]
		if !ok {
			return
		}
		if err := h(s, i); err != nil {
			b.logger.Error("Command failed",
				slog.String("command", i.ApplicationCommandData().Name),
				slog.String("err", err.Error()),
			)
		}
	})

	return nil
}

func (b *Bot) removeCommands() error {
	for _, v := range b.registeredCommands {
		err := b.session.ApplicationCommandDelete(b.session.State.User.ID, "", v.ID)
		if err != nil {
			return err
		}
	}
	return nil
}
