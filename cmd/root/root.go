// Package root contains the root command for the application.
package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saicharanbm/finTrack/internal/config"
	"github.com/saicharanbm/finTrack/internal/llm"
	"github.com/saicharanbm/finTrack/internal/logging"
	"github.com/saicharanbm/finTrack/internal/store"
)

var (
	// Cfg is the loaded configuration, shared with subcommands.
	Cfg *config.Config

	// Log is the shared logger instance for commands.
	Log logging.Logger

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "fintrack",
		Short: "A personal finance tracker with natural-language transaction entry.",
		Long: `fintrack records income and expense transactions and reports on them.
Transactions can be added manually or described in plain language, which is
parsed into structured records by a language model.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				return err
			}
			Log = config.NewLogger(Cfg)
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}
)

// NewCapability builds the configured generation capability.
func NewCapability(ctx context.Context) (llm.Client, error) {
	if Cfg.AI.APIKey == "" {
		return nil, fmt.Errorf("no API key configured: set OPENAI_API_KEY or GEMINI_API_KEY")
	}

	switch Cfg.AI.Provider {
	case "gemini":
		return llm.NewGeminiClient(ctx, Cfg.AI.APIKey, Cfg.AI.Model)
	default:
		return llm.NewOpenAIClient(Cfg.AI.APIKey, Cfg.AI.BaseURL, Cfg.AI.Model), nil
	}
}

// OpenStore connects to the configured database. The returned cleanup
// function must be called when the command finishes.
func OpenStore(ctx context.Context) (store.Store, func(), error) {
	if Cfg.Database.URL == "" {
		return nil, nil, fmt.Errorf("no database configured: set DATABASE_URL")
	}
	pg, err := store.NewPostgresStore(ctx, Cfg.Database.URL)
	if err != nil {
		return nil, nil, err
	}
	return pg, pg.Close, nil
}
