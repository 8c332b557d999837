package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"crmquest/internal/config"
	"crmquest/internal/ui"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the config file",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			src := a.cfg.Path
			if src == "" {
				src = ui.Muted.Render("(defaults)")
			}
			fmt.Fprintln(out, ui.LabelValue("Config", src))
			fmt.Fprintln(out, ui.LabelValue("Database", a.cfg.DBPath))
			fmt.Fprintln(out, ui.LabelValue("Locale", a.cfg.LocaleTag()))
			fmt.Fprintln(out, ui.LabelValue("Banner TTL", a.cfg.BannerTTL))
			fmt.Fprintln(out, ui.LabelValue("Log level", a.cfg.Log.Level))
			if a.cfg.Log.File != "" {
				fmt.Fprintln(out, ui.LabelValue("Log file", a.cfg.Log.File))
			}
			return nil
		},
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file if none exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Config at "+path))
			return nil
		},
	}

	cmd.AddCommand(show, initCmd)
	return cmd
}
