package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"babelcord/internals/lang"
)

const DefaultDeepLBaseURL = "https://api.deepl.com"

// DeepL calls the DeepL v2 translate endpoint. The free tier lives on a
// different host (https://api-free.deepl.com), so the base URL is a
// parameter.
type DeepL struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewDeepL(apiKey, baseURL string) *DeepL {
	if baseURL == "" {
		baseURL = DefaultDeepLBaseURL
	}
	return &DeepL{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type deeplRequest struct {
	Text       []string `json:"text"`
	TargetLang string   `json:"target_lang"`
}

type deeplResponse struct {
	Translations []deeplTranslation `json:"translations"`
}

type deeplTranslation struct {
	Text                   string `json:"text"`
	DetectedSourceLanguage string `json:"detected_source_language"`
}

func (t *DeepL) Translate(ctx context.Context, text string, target lang.Language) (Result, error) {
	if t.apiKey == "" {
		return Result{}, fmt.Errorf("DeepL API key required")
	}

	body, err := json.Marshal(deeplRequest{
		Text:       []string{text},
		TargetLang: target.String(),
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		t.baseURL+"/v2/translate",
		bytes.NewReader(body),
	)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "DeepL-Auth-Key "+t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return Result{}, fmt.Errorf("DeepL returned status %d: %s", resp.StatusCode, string(b))
	}

	var dr deeplResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return Result{}, fmt.Errorf("failed to decode response: %w", err)
	}

	// One text in, one translation out. Anything else is a protocol
	// surprise we refuse to guess about.
	if len(dr.Translations) != 1 {
		return Result{}, fmt.Errorf("expected 1 translation, got %d", len(dr.Translations))
	}

	source, err := lang.Parse(dr.Translations[0].DetectedSourceLanguage)
	if err != nil {
		return Result{}, fmt.Errorf("unrecognized detected source language: %w", err)
	}

	return Result{Text: dr.Translations[0].Text, Source: source}, nil
}
