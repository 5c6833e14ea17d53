package commands

import (
	"encoding/json"
	"fmt"

	dgo "github.com/bwmarrin/discordgo"

	"babelcord/internals/lang"
	"babelcord/internals/topic"
)

// SetLang writes the language pair into the channel topic, where the
// message handlers read it back from.
type SetLang struct {
	defaults topic.Config
}

func NewSetLang(defaults topic.Config) SetLang {
	return SetLang{defaults}
}

func (c SetLang) Info() *dgo.ApplicationCommand {
	var permissions int64 = dgo.PermissionAdministrator

	return &dgo.ApplicationCommand{
		Name:                     "setlang",
		Description:              "Set this channel's translation language pair",
		DefaultMemberPermissions: &permissions,
		Options: []*dgo.ApplicationCommandOption{{
			Type:        dgo.ApplicationCommandOptionString,
			Required:    true,
			Name:        "target",
			Description: "Language to translate into",
		}, {
			Type:        dgo.ApplicationCommandOptionString,
			Required:    false,
			Name:        "default",
			Description: "Language spoken by default (falls back to the bot default)",
		}},
	}
}

func (c SetLang) Handle(s *dgo.Session, i *dgo.InteractionCreate) error {
	opts := getOptions(i)

	cfg := c.defaults
	target, err := lang.Parse(opts["target"].StringValue())
	if err != nil {
		return respondEphemeral(s, i, fmt.Sprintf("Unknown language code %q", opts["target"].StringValue()))
	}
	cfg.TargetLang = target

	if opt, ok := opts["default"]; ok {
		def, err := lang.Parse(opt.StringValue())
		if err != nil {
			return respondEphemeral(s, i, fmt.Sprintf("Unknown language code %q", opt.StringValue()))
		}
		cfg.DefaultLang = def
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	if _, err := s.ChannelEditComplex(i.ChannelID, &dgo.ChannelEdit{
		Topic: string(raw),
	}); err != nil {
		if rerr := respondEphemeral(s, i, "Failed to edit the channel topic"); rerr != nil {
			return rerr
		}
		return err
	}

	return respondEphemeral(s, i, fmt.Sprintf(
		"Channel languages set: %s <=> %s", cfg.DefaultLang, cfg.TargetLang,
	))
}
