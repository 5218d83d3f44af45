package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [base_dir]",
		Short: "Restore cached dependencies or install and cache them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options(cmd, args)
			if err != nil {
				return err
			}
			_, err = c.app.Run(cmd.Context(), opts)
			return err
		},
	}
	addProjectFlags(cmd)
	return cmd
}

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [base_dir]",
		Short: "Install syncnm in a project and perform a run",
		Long:  "Install records an explicit --cache-dir in syncnm.yaml so later runs share it, then performs a run.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options(cmd, args)
			if err != nil {
				return err
			}
			_, err = c.app.Install(cmd.Context(), opts)
			return err
		},
	}
	addProjectFlags(cmd)
	return cmd
}

func (c *CLI) newUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uninstall [base_dir]",
		Short: "Remove a project's cache entries and syncnm.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options(cmd, args)
			if err != nil {
				return err
			}
			return c.app.Uninstall(cmd.Context(), opts)
		},
	}
	addProjectFlags(cmd)
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [base_dir]",
		Short: "Run, then run again whenever manifests or lockfiles change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options(cmd, args)
			if err != nil {
				return err
			}
			return c.app.Watch(cmd.Context(), opts)
		},
	}
	addProjectFlags(cmd)
	return cmd
}
