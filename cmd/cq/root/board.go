package root

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"crmquest/internal/tui"
)

func newBoardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stderr logs would draw over the board.
			if a.cfg.Log.File == "" {
				a.logger = zap.NewNop()
			}

			ctx := cmd.Context()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, svc, tui.Options{
				BannerTTL: a.cfg.BannerTTL,
				Locale:    a.cfg.LocaleTag(),
			}, cmd.OutOrStdout())
		},
	}

	return cmd
}
