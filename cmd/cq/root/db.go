package root

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crmquest/internal/session"
	"crmquest/internal/storage"
	"crmquest/internal/ui"
)

func (a *app) openDB(ctx context.Context) (*sql.DB, func(), error) {
	db, err := storage.Open(ctx, a.cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func (a *app) openService(ctx context.Context) (*session.Service, func(), error) {
	db, cleanup, err := a.openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc := session.NewService(db,
		session.WithLogger(a.logger.With(zap.String("db", a.cfg.DBPath))),
		session.WithLocale(a.cfg.LocaleTag()),
	)
	return svc, cleanup, nil
}

func newDBCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the local database",
	}

	var reset bool
	seed := &cobra.Command{
		Use:   "seed",
		Short: "Load the sample clients and missions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Seed(ctx, reset); err != nil {
				return err
			}
			msg := "Sample data loaded"
			if reset {
				msg = "Sample data restored"
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconSparkle+" "+msg))
			return nil
		},
	}
	seed.Flags().BoolVar(&reset, "reset", false, "Remove existing clients and missions and restore the sample progress")

	path := &cobra.Command{
		Use:   "path",
		Short: "Print the database path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.cfg.DBPath)
			return nil
		},
	}

	cmd.AddCommand(seed, path)
	return cmd
}
