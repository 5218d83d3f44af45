package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/syncnm/internal/app"
	"go.trai.ch/syncnm/internal/ui/output"
	"go.trai.ch/syncnm/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [base_dir]",
		Short: "Show the cached snapshots of a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options(cmd, args)
			if err != nil {
				return err
			}
			status, err := c.app.Status(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return printStatus(cmd.OutOrStdout(), status)
		},
	}
	addProjectFlags(cmd)
	return cmd
}

func (c *CLI) newPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune [base_dir]",
		Short: "Remove every parked snapshot of a project except the current one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options(cmd, args)
			if err != nil {
				return err
			}
			removed, err := c.app.Prune(cmd.Context(), opts)
			if err != nil {
				return err
			}
			out := output.New(cmd.OutOrStdout())
			for _, key := range removed {
				if err := output.Line(out, style.Cross+" "+key.String(), style.Slate); err != nil {
					return err
				}
			}
			return nil
		},
	}
	addProjectFlags(cmd)
	return cmd
}

func printStatus(w io.Writer, status app.Status) error {
	out := output.New(w)

	header := fmt.Sprintf("project %s\ncache   %s\n", status.DirKey, status.CacheDir)
	if _, err := out.WriteString(header); err != nil {
		return err
	}

	if len(status.Entries) == 0 {
		return output.Line(out, "no cached snapshots", style.Slate)
	}

	for _, entry := range status.Entries {
		icon, color := style.Circle, style.Slate
		if entry.Current {
			icon, color = style.Dot, style.Green
		}

		line := icon + " " + entry.Key.String()
		if origin := provenance(entry.Provenance.Branch, entry.Provenance.Commit); origin != "" {
			line += "  " + origin
		}

		if err := output.Line(out, line, color); err != nil {
			return err
		}
	}
	return nil
}

// provenance renders branch and an abbreviated commit as "branch@commit".
func provenance(branch, commit string) string {
	const shortCommit = 7
	if len(commit) > shortCommit {
		commit = commit[:shortCommit]
	}
	switch {
	case branch != "" && commit != "":
		return branch + "@" + commit
	case commit != "":
		return commit
	default:
		return branch
	}
}
