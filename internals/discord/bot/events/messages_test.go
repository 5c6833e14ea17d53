package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	dgo "github.com/bwmarrin/discordgo"

	"babelcord/internals/lang"
	"babelcord/internals/msgstore"
	"babelcord/internals/topic"
	"babelcord/internals/translator"
)

// scriptedTranslator returns a canned result per target language, always
// reporting the same detected source.
type scriptedTranslator struct {
	source  lang.Language
	results map[lang.Language]string
	calls   int
}

func (t *scriptedTranslator) Translate(
	_ context.Context, text string, target lang.Language,
) (translator.Result, error) {
	t.calls++
	out, ok := t.results[target]
	if !ok {
		return translator.Result{}, errors.New("no script for target " + target.String())
	}
	return translator.Result{Text: out, Source: t.source}, nil
}

// countingStore records writes; reads always miss.
type countingStore struct {
	links   int
	unlinks int
}

func (st *countingStore) Link(msgstore.Link) error {
	st.links++
	return nil
}

func (st *countingStore) Reply(string, string) (msgstore.Link, error) {
	return msgstore.Link{}, msgstore.ErrNotFound
}

func (st *countingStore) Unlink(string, string) error {
	st.unlinks++
	return nil
}

var pair = topic.Config{DefaultLang: lang.EN, TargetLang: lang.JA}

func TestComposeReply_DefaultToTarget(t *testing.T) {
	tr := &scriptedTranslator{
		source:  lang.EN,
		results: map[lang.Language]string{lang.JA: "こんにちは"},
	}

	reply, err := composeReply(context.Background(), tr, pair, "Hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "`JA:` こんにちは" {
		t.Errorf("unexpected reply: %q", reply)
	}
	if tr.calls != 1 {
		t.Errorf("expected 1 translation call, got %d", tr.calls)
	}
}

func TestComposeReply_TargetToDefault(t *testing.T) {
	tr := &scriptedTranslator{
		source: lang.JA,
		results: map[lang.Language]string{
			lang.JA: "こんにちは",
			lang.EN: "Hello",
		},
	}

	reply, err := composeReply(context.Background(), tr, pair, "こんにちは")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "`EN:` Hello" {
		t.Errorf("unexpected reply: %q", reply)
	}
	if tr.calls != 2 {
		t.Errorf("expected 2 translation calls, got %d", tr.calls)
	}
}

func TestComposeReply_UnknownSource(t *testing.T) {
	tr := &scriptedTranslator{
		source: lang.DE,
		results: map[lang.Language]string{
			lang.JA: "こんにちは",
			lang.EN: "Hello",
		},
	}

	reply, err := composeReply(context.Background(), tr, pair, "Hallo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "`JA:` こんにちは\n`EN:` Hello\n(translated from `DE`)"
	if reply != want {
		t.Errorf("reply = %q, want %q", reply, want)
	}
}

func TestComposeReply_DegeneratePair(t *testing.T) {
	tr := &scriptedTranslator{
		source:  lang.JA,
		results: map[lang.Language]string{lang.JA: "こんにちは"},
	}
	same := topic.Config{DefaultLang: lang.JA, TargetLang: lang.JA}

	reply, err := composeReply(context.Background(), tr, same, "こんにちは")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "" {
		t.Errorf("expected empty reply, got %q", reply)
	}
}

func TestComposeReply_ProviderError(t *testing.T) {
	tr := &scriptedTranslator{source: lang.EN, results: map[lang.Language]string{}}

	if _, err := composeReply(context.Background(), tr, pair, "Hello"); err == nil {
		t.Error("expected error from provider")
	}
}

// The skip guards all return before the session, translator or store is
// touched, so Serve can run against a nil session.
func TestMessageCreate_Serve_SkipsWithoutTranslating(t *testing.T) {
	cases := []struct {
		name string
		msg  *dgo.Message
	}{
		{"bot author", &dgo.Message{
			Author:  &dgo.User{ID: "1", Bot: true},
			Content: "Hello",
			Type:    dgo.MessageTypeDefault,
		}},
		{"missing author", &dgo.Message{
			Content: "Hello",
			Type:    dgo.MessageTypeDefault,
		}},
		{"empty content", &dgo.Message{
			Author: &dgo.User{ID: "1"},
			Type:   dgo.MessageTypeDefault,
		}},
		{"system message type", &dgo.Message{
			Author:  &dgo.User{ID: "1"},
			Content: "Hello",
			Type:    dgo.MessageTypeGuildMemberJoin,
		}},
		{"bare link", &dgo.Message{
			Author:  &dgo.User{ID: "1"},
			Content: "https://example.com",
			Type:    dgo.MessageTypeDefault,
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := &scriptedTranslator{source: lang.EN, results: map[lang.Language]string{}}
			st := &countingStore{}
			h := NewMessageCreate(st, tr, pair, slog.New(slog.NewTextHandler(io.Discard, nil)))

			h.Serve(nil, &dgo.MessageCreate{Message: c.msg})

			if tr.calls != 0 {
				t.Errorf("expected no translation calls, got %d", tr.calls)
			}
			if st.links != 0 {
				t.Errorf("expected no store writes, got %d", st.links)
			}
		})
	}
}

func TestMessageUpdate_Serve_SkipsBotsAndEmptyContent(t *testing.T) {
	for _, msg := range []*dgo.Message{
		{Author: &dgo.User{ID: "1", Bot: true}, Content: "Hello"},
		{Author: &dgo.User{ID: "1"}},
		{Content: "Hello"},
	} {
		tr := &scriptedTranslator{source: lang.EN, results: map[lang.Language]string{}}
		st := &countingStore{}
		h := NewMessageUpdate(st, tr, pair, slog.New(slog.NewTextHandler(io.Discard, nil)))

		h.Serve(nil, &dgo.MessageUpdate{Message: msg})

		if tr.calls != 0 {
			t.Errorf("expected no translation calls, got %d", tr.calls)
		}
	}
}

func TestIsBareURL(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"https://example.com", true},
		{"https://example.com/path?q=1", true},
		{"example.com", false},
		{"Hello world", false},
		{"check https://example.com out", false},
		{"", false},
	}

	for _, c := range cases {
		if got := isBareURL(c.in); got != c.want {
			t.Errorf("isBareURL(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
