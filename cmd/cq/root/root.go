package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crmquest/internal/config"
	"crmquest/internal/logging"
	"crmquest/internal/ui"
)

const Version = "0.1.0"

// app holds what the persistent flags resolve to. Subcommands read it in RunE.
type app struct {
	configPath string
	dbPath     string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "cq",
		Short: "crmquest: client relationships as a quest log",
		Long: `crmquest is a local-first client relationship dashboard with RPG progression.

Clients earn tiers from relationship points, follow-ups and meetings are
missions, and completing a mission awards XP toward your next level.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if a.dbPath != "" {
				cfg.DBPath = a.dbPath
			}
			a.cfg = cfg

			logger, err := logging.New(cfg.Log, a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			a.logger.Debug("config loaded",
				zap.String("config", cfg.Path),
				zap.String("db", cfg.DBPath),
				zap.String("locale", cfg.Locale))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default ~/.config/crmquest/config.yaml)")
	cmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "SQLite database path (overrides config and CQ_DB_PATH)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(
		newClientsCmd(a),
		newMissionsCmd(a),
		newCompleteCmd(a),
		newStatusCmd(a),
		newAddCmd(a),
		newDBCmd(a),
		newConfigCmd(a),
		newBoardCmd(a),
	)
	return cmd
}

func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
