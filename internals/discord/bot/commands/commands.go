package commands

import (
	dgo "github.com/bwmarrin/discordgo"
)

type Command interface {
	Info() *dgo.ApplicationCommand
	Handle(s *dgo.Session, i *dgo.InteractionCreate) error
}

func getOptions(i *dgo.InteractionCreate) map[string]*dgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*dgo.ApplicationCommandInteractionDataOption, len(opts))

	for _, opt := range opts {
		m[opt.Name] = opt
	}

	return m
}

func respondEphemeral(s *dgo.Session, i *dgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &dgo.InteractionResponse{
		Type: dgo.InteractionResponseChannelMessageWithSource,
		Data: &dgo.InteractionResponseData{
			Content: content,
			Flags:   dgo.MessageFlagsEphemeral,
		},
	})
}
