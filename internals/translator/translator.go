package translator

import (
	"context"

	"babelcord/internals/lang"
)

// Result is a single translation. Source is the language the provider
// detected the input to be in.
type Result struct {
	Text   string
	Source lang.Language
}

type Translator interface {
	// Translate a text into the target language. The source language is
	// detected by the provider.
	Translate(ctx context.Context, text string, target lang.Language) (Result, error)
}

// Mock returns the input unchanged and reports a fixed source language.
type Mock struct {
	Source lang.Language
}

func NewMock() Mock {
	return Mock{Source: lang.EN}
}

func (t Mock) Translate(_ context.Context, text string, _ lang.Language) (Result, error) {
	return Result{Text: text, Source: t.Source}, nil
}
