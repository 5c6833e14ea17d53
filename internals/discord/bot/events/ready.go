package events

import (
	"log/slog"

	dgo "github.com/bwmarrin/discordgo"
)

type Ready struct {
	log *slog.Logger
}

func NewReady(log *slog.Logger) EventHandler[*dgo.Ready] {
	return Ready{log}
}

func (h Ready) Serve(s *dgo.Session, ev *dgo.Ready) {
	h.log.Info("Connected", slog.String("user", ev.User.Username))
}

type Resumed struct {
	log *slog.Logger
}

func NewResumed(log *slog.Logger) EventHandler[*dgo.Resumed] {
	return Resumed{log}
}

func (h Resumed) Serve(s *dgo.Session, ev *dgo.Resumed) {
	h.log.Info("Session resumed")
}
