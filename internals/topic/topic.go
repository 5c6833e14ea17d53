// Package topic extracts a channel's language pair from its topic text.
//
// A channel opts into a language pair by embedding a JSON object in its
// topic, either alone or surrounded by prose:
//
//	{"default_lang": "EN", "target_lang": "JA"}
//
// The target_lang-only variant is accepted too; the default side then comes
// from the bot-wide fallback.
package topic

import (
	"encoding/json"

	"babelcord/internals/lang"
)

type Config struct {
	DefaultLang lang.Language `json:"default_lang"`
	TargetLang  lang.Language `json:"target_lang"`
}

type rawConfig struct {
	DefaultLang string `json:"default_lang"`
	TargetLang  string `json:"target_lang"`
}

// Resolve parses the language pair out of a channel topic. Any part that is
// missing or malformed falls back field-wise to the given fallback, so a
// topic with only a valid target_lang still takes effect.
func Resolve(topicText string, fallback Config) Config {
	raw, ok := extract(topicText)
	if !ok {
		return fallback
	}

	cfg := fallback
	if l, err := lang.Parse(raw.DefaultLang); err == nil {
		cfg.DefaultLang = l
	}
	if l, err := lang.Parse(raw.TargetLang); err == nil {
		cfg.TargetLang = l
	}
	return cfg
}

func extract(topicText string) (rawConfig, bool) {
	var raw rawConfig
	if err := json.Unmarshal([]byte(topicText), &raw); err == nil {
		return raw, true
	}

	obj, ok := firstObject(topicText)
	if !ok {
		return rawConfig{}, false
	}
	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		return rawConfig{}, false
	}
	return raw, true
}

// firstObject returns the first balanced {...} block in s, tracking string
// literals so braces inside quoted values don't break the count.
func firstObject(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}

		switch r {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}

	return "", false
}
