package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	charm "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"babelcord/internals/config"
	"babelcord/internals/discord/bot"
	"babelcord/internals/msgstore"
	"babelcord/internals/topic"
	"babelcord/internals/translator"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "babelcord",
	Short: "Channel-topic configured translation bot for Discord",
	Long: `babelcord listens to guild messages and replies with translations
between each channel's default and target language.

A channel opts in by embedding a JSON object in its topic:

  {"default_lang": "EN", "target_lang": "JA"}

Languages without a topic config fall back to DEFAULT_LANGUAGE and
TARGET_LANGUAGE from the environment.`,
	RunE: run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.babelcord.yaml)")
	rootCmd.Flags().String("provider", "deepl", "translation provider (deepl, google or mock)")
	rootCmd.Flags().String("db", "file:./messages.db", "message link database path")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	lvl, err := charm.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	logger := slog.New(charm.NewWithOptions(os.Stderr, charm.Options{
		ReportTimestamp: true,
		Level:           lvl,
	}))

	store, err := msgstore.NewSQLiteStore(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close database", slog.String("err", err.Error()))
		}
	}()
	if err := store.Prepare(); err != nil {
		return fmt.Errorf("failed to prepare database: %w", err)
	}

	t, closeTranslator, err := buildTranslator(cfg)
	if err != nil {
		return err
	}
	if closeTranslator != nil {
		defer func() {
			if err := closeTranslator(); err != nil {
				logger.Error("Failed to close translator", slog.String("err", err.Error()))
			}
		}()
	}

	defaults := topic.Config{
		DefaultLang: cfg.Languages.Default,
		TargetLang:  cfg.Languages.Target,
	}

	b, err := bot.New(cfg.Discord.Token, store, t, defaults, logger)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	if err := b.Start(); err != nil {
		return fmt.Errorf("failed to start bot: %w", err)
	}
	logger.Info("Bot session opened successfully")
	defer func() {
		if err := b.Stop(); err != nil {
			logger.Error("Failed to close bot session", slog.String("err", err.Error()))
			return
		}
		logger.Info("Bot session closed successfully")
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	return nil
}

func buildTranslator(cfg *config.Config) (translator.Translator, func() error, error) {
	switch cfg.Translator.Provider {
	case "deepl":
		return translator.NewBreaker(
			translator.NewDeepL(cfg.DeepL.APIKey, cfg.DeepL.BaseURL),
		), nil, nil
	case "google":
		g, err := translator.NewGoogle(context.Background(), cfg.Google.Credentials)
		if err != nil {
			return nil, nil, err
		}
		return translator.NewBreaker(g), g.Close, nil
	case "mock":
		return translator.NewMock(), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown translator provider %q", cfg.Translator.Provider)
	}
}
