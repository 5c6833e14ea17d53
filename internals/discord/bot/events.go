package bot

import "babelcord/internals/discord/bot/events"

func (b *Bot) registerEventHandlers() {
	ehs := []any{
		events.NewReady(b.logger).Serve,
		events.NewResumed(b.logger).Serve,
		events.NewMessageCreate(b.store, b.translator, b.defaults, b.logger).Serve,
		events.NewMessageUpdate(b.store, b.translator, b.defaults, b.logger).Serve,
		events.NewMessageDelete(b.store, b.logger).Serve,
	}
	for _, h := range ehs {
		b.session.AddHandler(h)
	}
}
