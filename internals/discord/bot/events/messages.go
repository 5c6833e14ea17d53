package events

import (
	"context"
	e "errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	dgo "github.com/bwmarrin/discordgo"

	"babelcord/internals/msgstore"
	"babelcord/internals/topic"
	"babelcord/internals/translator"
)

const translateTimeout = 30 * time.Second

type MessageCreate struct {
	store      msgstore.Store
	translator translator.Translator
	defaults   topic.Config
	log        *slog.Logger
}

func NewMessageCreate(
	store msgstore.Store,
	t translator.Translator,
	defaults topic.Config,
	log *slog.Logger,
) MessageCreate {
	return MessageCreate{store, t, defaults, log}
}

func (h MessageCreate) Serve(s *dgo.Session, ev *dgo.MessageCreate) {
	msg := ev.Message
	if msg.Author == nil || msg.Author.Bot || msg.Content == "" {
		return
	}
	if ev.Type != dgo.MessageTypeDefault && ev.Type != dgo.MessageTypeReply {
		return
	}
	if isBareURL(msg.Content) {
		h.log.Debug("Skipping link-only message",
			slog.String("channel", msg.ChannelID),
			slog.String("message", msg.ID),
		)
		return
	}

	cfg := resolveConfig(s, msg.ChannelID, h.defaults, h.log)

	ctx, cancel := context.WithTimeout(context.Background(), translateTimeout)
	defer cancel()

	reply, err := composeReply(ctx, h.translator, cfg, msg.Content)
	if err != nil {
		h.log.Error("Failed to translate message",
			slog.String("channel", msg.ChannelID),
			slog.String("message", msg.ID),
			slog.String("err", err.Error()),
		)
		if _, err := s.ChannelMessageSendReply(
			msg.ChannelID, "Failed to translate message", msg.Reference(),
		); err != nil {
			h.log.Error("Failed to reply with error notice", slog.String("err", err.Error()))
		}
		return
	}
	if reply == "" {
		return
	}

	rm, err := s.ChannelMessageSendReply(msg.ChannelID, reply, msg.Reference())
	if err != nil {
		h.log.Error("Failed to reply translation result",
			slog.String("channel", msg.ChannelID),
			slog.String("message", msg.ID),
			slog.String("err", err.Error()),
		)
		return
	}

	err = h.store.Link(msgstore.Link{
		ChannelID: msg.ChannelID,
		MessageID: msg.ID,
		ReplyID:   rm.ID,
	})
	if err != nil && !e.Is(err, msgstore.ErrNoAffect) {
		h.log.Error("Failed to link translation reply",
			slog.String("message", msg.ID),
			slog.String("reply", rm.ID),
			slog.String("err", err.Error()),
		)
	}
}

type MessageUpdate struct {
	store      msgstore.Store
	translator translator.Translator
	defaults   topic.Config
	log        *slog.Logger
}

func NewMessageUpdate(
	store msgstore.Store,
	t translator.Translator,
	defaults topic.Config,
	log *slog.Logger,
) MessageUpdate {
	return MessageUpdate{store, t, defaults, log}
}

func (h MessageUpdate) Serve(s *dgo.Session, ev *dgo.MessageUpdate) {
	msg := ev.Message
	if msg.Author == nil || msg.Author.Bot || msg.Content == "" {
		return
	}

	l, err := h.store.Reply(msg.ChannelID, msg.ID)
	if e.Is(err, msgstore.ErrNotFound) {
		h.log.Debug("Message has no translation reply, ignoring.",
			slog.String("channel", msg.ChannelID),
			slog.String("message", msg.ID),
		)
		return
	} else if err != nil {
		h.log.Error("Failed to get translation reply from database",
			slog.String("message", msg.ID),
			slog.String("err", err.Error()),
		)
		return
	}

	cfg := resolveConfig(s, msg.ChannelID, h.defaults, h.log)

	ctx, cancel := context.WithTimeout(context.Background(), translateTimeout)
	defer cancel()

	reply, err := composeReply(ctx, h.translator, cfg, msg.Content)
	if err != nil {
		h.log.Error("Failed to translate edited message",
			slog.String("message", msg.ID),
			slog.String("err", err.Error()),
		)
		return
	}
	if reply == "" {
		return
	}

	if _, err := s.ChannelMessageEdit(l.ChannelID, l.ReplyID, reply); err != nil {
		h.log.Error("Failed to edit translation reply",
			slog.String("reply", l.ReplyID),
			slog.String("err", err.Error()),
		)
	}
}

type MessageDelete struct {
	store msgstore.Store
	log   *slog.Logger
}

func NewMessageDelete(store msgstore.Store, log *slog.Logger) MessageDelete {
	return MessageDelete{store, log}
}

func (h MessageDelete) Serve(s *dgo.Session, ev *dgo.MessageDelete) {
	l, err := h.store.Reply(ev.ChannelID, ev.ID)
	if e.Is(err, msgstore.ErrNotFound) {
		return
	} else if err != nil {
		h.log.Error("Failed to get translation reply from database",
			slog.String("message", ev.ID),
			slog.String("err", err.Error()),
		)
		return
	}

	if err := s.ChannelMessageDelete(l.ChannelID, l.ReplyID); err != nil {
		h.log.Warn("Failed to delete translation reply",
			slog.String("channel", l.ChannelID),
			slog.String("reply", l.ReplyID),
			slog.String("err", err.Error()),
		)
	}

	if err := h.store.Unlink(ev.ChannelID, ev.ID); err != nil && !e.Is(err, msgstore.ErrNoAffect) {
		h.log.Error("Failed to unlink deleted message",
			slog.String("message", ev.ID),
			slog.String("err", err.Error()),
		)
	}
}

// composeReply translates text for the channel's language pair and formats
// the reply. There are three cases, keyed off the source language the
// provider detects:
//
//   - source is the default language: reply with the target translation.
//   - source is the target language: translate back to the default language
//     instead, so both sides of the channel stay readable.
//   - source is neither: reply with both translations and name the detected
//     language.
//
// When the pair is degenerate (source == target == default) there is nothing
// useful to say and the reply is empty.
func composeReply(
	ctx context.Context,
	t translator.Translator,
	cfg topic.Config,
	text string,
) (string, error) {
	res, err := t.Translate(ctx, text, cfg.TargetLang)
	if err != nil {
		return "", err
	}

	switch {
	case res.Source == cfg.TargetLang && cfg.TargetLang == cfg.DefaultLang:
		return "", nil
	case res.Source == cfg.TargetLang:
		rev, err := t.Translate(ctx, text, cfg.DefaultLang)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("`%s:` %s", cfg.DefaultLang, rev.Text), nil
	case res.Source != cfg.DefaultLang:
		rev, err := t.Translate(ctx, text, cfg.DefaultLang)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("`%s:` %s\n`%s:` %s\n(translated from `%s`)",
			cfg.TargetLang, res.Text,
			cfg.DefaultLang, rev.Text,
			res.Source,
		), nil
	default:
		return fmt.Sprintf("`%s:` %s", cfg.TargetLang, res.Text), nil
	}
}

// resolveConfig reads the channel's language pair from its topic, falling
// back to the bot-wide defaults. The topic is read on every event so edits
// take effect immediately.
func resolveConfig(s *dgo.Session, channelID string, defaults topic.Config, log *slog.Logger) topic.Config {
	ch, err := s.State.Channel(channelID)
	if err != nil {
		ch, err = s.Channel(channelID)
	}
	if err != nil {
		log.Error("Failed to get channel, using default languages",
			slog.String("channel", channelID),
			slog.String("err", err.Error()),
		)
		return defaults
	}

	return topic.Resolve(ch.Topic, defaults)
}

// isBareURL reports whether the whole message is a single absolute URL.
// Links carry no text worth translating.
func isBareURL(content string) bool {
	if len(strings.Fields(content)) != 1 {
		return false
	}
	u, err := url.Parse(strings.TrimSpace(content))
	return err == nil && u.Scheme != "" && u.Host != ""
}
