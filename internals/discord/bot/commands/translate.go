package commands

import (
	"context"
	"fmt"
	"time"

	dgo "github.com/bwmarrin/discordgo"

	"babelcord/internals/lang"
	"babelcord/internals/translator"
)

type Translate struct {
	translator translator.Translator
}

func NewTranslate(t translator.Translator) Translate {
	return Translate{t}
}

func (c Translate) Info() *dgo.ApplicationCommand {
	return &dgo.ApplicationCommand{
		Name:        "translate",
		Description: "Translate a text without posting it to the channel",
		Options: []*dgo.ApplicationCommandOption{{
			Type:        dgo.ApplicationCommandOptionString,
			Required:    true,
			Name:        "text",
			Description: "The text to translate",
		}, {
			Type:        dgo.ApplicationCommandOptionString,
			Required:    true,
			Name:        "to",
			Description: "Target language code, e.g. EN, JA, PT-BR",
		}},
	}
}

func (c Translate) Handle(s *dgo.Session, i *dgo.InteractionCreate) error {
	opts := getOptions(i)

	target, err := lang.Parse(opts["to"].StringValue())
	if err != nil {
		return respondEphemeral(s, i, fmt.Sprintf("Unknown language code %q", opts["to"].StringValue()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	res, err := c.translator.Translate(ctx, opts["text"].StringValue(), target)
	if err != nil {
		return respondEphemeral(s, i, "Failed to translate message")
	}

	return respondEphemeral(s, i, fmt.Sprintf("`%s:` %s", target, res.Text))
}
