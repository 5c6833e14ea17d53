package translator

import (
	"context"
	"fmt"
	"strings"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"babelcord/internals/lang"
)

// Google is an alternate backend using the Cloud Translation API.
type Google struct {
	client *translate.Client
}

func NewGoogle(ctx context.Context, credentialsFile string) (*Google, error) {
	opts := []option.ClientOption{}
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}

	return &Google{client: client}, nil
}

func (t *Google) Translate(ctx context.Context, text string, target lang.Language) (Result, error) {
	targetTag, err := language.Parse(target.String())
	if err != nil {
		return Result{}, fmt.Errorf("invalid target language: %w", err)
	}

	translations, err := t.client.Translate(ctx, []string{text}, targetTag, nil)
	if err != nil {
		return Result{}, fmt.Errorf("translation failed: %w", err)
	}
	if len(translations) != 1 {
		return Result{}, fmt.Errorf("expected 1 translation, got %d", len(translations))
	}

	return Result{
		Text:   translations[0].Text,
		Source: lang.Language(strings.ToUpper(translations[0].Source.String())),
	}, nil
}

func (t *Google) Close() error {
	return t.client.Close()
}
