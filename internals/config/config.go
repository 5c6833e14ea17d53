package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"babelcord/internals/lang"
	"babelcord/internals/translator"
)

type Config struct {
	Discord    DiscordConfig
	Translator TranslatorConfig
	DeepL      DeepLConfig
	Google     GoogleConfig
	Languages  LanguagesConfig
	DB         DBConfig
	Log        LogConfig
}

type DiscordConfig struct {
	Token string
}

type TranslatorConfig struct {
	Provider string
}

type DeepLConfig struct {
	APIKey  string
	BaseURL string
}

type GoogleConfig struct {
	Credentials string
}

type LanguagesConfig struct {
	Default lang.Language
	Target  lang.Language
}

type DBConfig struct {
	Path string
}

type LogConfig struct {
	Level string
}

// Load reads configuration from, in rising precedence: defaults, an
// optional YAML config file, environment variables, and command-line flags.
// The legacy environment variable names (DISCORD_TOKEN, DEEPL_API_KEY,
// DEFAULT_LANGUAGE, TARGET_LANGUAGE, LOG_LEVEL) are bound explicitly.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("translator.provider", "deepl")
	v.SetDefault("deepl.base_url", translator.DefaultDeepLBaseURL)
	v.SetDefault("languages.default", "JA")
	v.SetDefault("languages.target", "JA")
	v.SetDefault("db.path", "file:./messages.db")
	v.SetDefault("log.level", "info")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".babelcord")
	}

	v.SetEnvPrefix("BABELCORD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("discord.token", "DISCORD_TOKEN")
	v.BindEnv("deepl.api_key", "DEEPL_API_KEY")
	v.BindEnv("languages.default", "DEFAULT_LANGUAGE")
	v.BindEnv("languages.target", "TARGET_LANGUAGE")
	v.BindEnv("log.level", "LOG_LEVEL")

	if flags != nil {
		v.BindPFlag("translator.provider", flags.Lookup("provider"))
		v.BindPFlag("db.path", flags.Lookup("db"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Discord: DiscordConfig{
			Token: v.GetString("discord.token"),
		},
		Translator: TranslatorConfig{
			Provider: v.GetString("translator.provider"),
		},
		DeepL: DeepLConfig{
			APIKey:  v.GetString("deepl.api_key"),
			BaseURL: v.GetString("deepl.base_url"),
		},
		Google: GoogleConfig{
			Credentials: v.GetString("google.credentials"),
		},
		DB: DBConfig{
			Path: v.GetString("db.path"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
	}

	def, err := lang.Parse(v.GetString("languages.default"))
	if err != nil {
		return nil, fmt.Errorf("invalid default language: %w", err)
	}
	target, err := lang.Parse(v.GetString("languages.target"))
	if err != nil {
		return nil, fmt.Errorf("invalid target language: %w", err)
	}
	cfg.Languages = LanguagesConfig{Default: def, Target: target}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Discord.Token == "" {
		return errors.New("DISCORD_TOKEN is required")
	}

	switch c.Translator.Provider {
	case "deepl":
		if c.DeepL.APIKey == "" {
			return errors.New("DEEPL_API_KEY is required for the deepl provider")
		}
	case "google", "mock":
	default:
		return fmt.Errorf("unknown translator provider %q", c.Translator.Provider)
	}

	return nil
}
