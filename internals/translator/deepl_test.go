package translator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"babelcord/internals/lang"
)

func TestDeepL_Translate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "DeepL-Auth-Key test-key" {
			t.Errorf("unexpected Authorization header: %q", got)
		}
		if r.URL.Path != "/v2/translate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		var req deeplRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if len(req.Text) != 1 || req.Text[0] != "Hello" {
			t.Errorf("unexpected request text: %v", req.Text)
		}
		if req.TargetLang != "JA" {
			t.Errorf("unexpected target_lang: %s", req.TargetLang)
		}

		json.NewEncoder(w).Encode(deeplResponse{
			Translations: []deeplTranslation{
				{Text: "こんにちは", DetectedSourceLanguage: "EN"},
			},
		})
	}))
	defer server.Close()

	svc := NewDeepL("test-key", server.URL)

	res, err := svc.Translate(context.Background(), "Hello", lang.JA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "こんにちは" {
		t.Errorf("expected translated text, got %q", res.Text)
	}
	if res.Source != lang.EN {
		t.Errorf("expected source EN, got %q", res.Source)
	}
}

func TestDeepL_Translate_NoAPIKey(t *testing.T) {
	svc := NewDeepL("", "")

	if _, err := svc.Translate(context.Background(), "Hello", lang.JA); err == nil {
		t.Error("expected error when no API key")
	}
}

func TestDeepL_Translate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("Forbidden"))
	}))
	defer server.Close()

	svc := NewDeepL("test-key", server.URL)

	if _, err := svc.Translate(context.Background(), "Hello", lang.JA); err == nil {
		t.Error("expected error for non-OK status")
	}
}

func TestDeepL_Translate_MultipleTranslations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(deeplResponse{
			Translations: []deeplTranslation{
				{Text: "a", DetectedSourceLanguage: "EN"},
				{Text: "b", DetectedSourceLanguage: "EN"},
			},
		})
	}))
	defer server.Close()

	svc := NewDeepL("test-key", server.URL)

	if _, err := svc.Translate(context.Background(), "Hello", lang.JA); err == nil {
		t.Error("expected error for multiple translations")
	}
}

func TestDeepL_DefaultBaseURL(t *testing.T) {
	svc := NewDeepL("test-key", "")

	if svc.baseURL != DefaultDeepLBaseURL {
		t.Errorf("expected default base URL, got %q", svc.baseURL)
	}
}
