package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckpointsCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkpoints",
		Short: "Manage stored enumeration snapshots",
	}
	cmd.AddCommand(newCheckpointsListCmd(configPath))
	cmd.AddCommand(newCheckpointsShowCmd(configPath))
	cmd.AddCommand(newCheckpointsDeleteCmd(configPath))
	return cmd
}

func newCheckpointsListCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored checkpoint run IDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := loadStore(ctx, *configPath)
			if err != nil {
				return err
			}
			defer store.Close()
			ids, err := store.List(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(ids) == 0 {
				fmt.Fprintln(out, "no checkpoints")
				return nil
			}
			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}
}

func newCheckpointsShowCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show and verify one checkpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := loadStore(ctx, *configPath)
			if err != nil {
				return err
			}
			defer store.Close()
			snap, err := store.Get(ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "run:      %s\n", snap.ID)
			fmt.Fprintf(out, "surface:  M_{%d,%d}\n", snap.Genus, snap.Punctures)
			fmt.Fprintf(out, "created:  %s\n", snap.CreatedAt.Format("2006-01-02 15:04:05 MST"))
			classes := 0
			for _, lvl := range snap.Levels {
				classes += len(lvl.Classes)
			}
			fmt.Fprintf(out, "levels:   %d (%d classes)\n", len(snap.Levels), classes)
			if snap.Betti != nil {
				fmt.Fprintf(out, "betti:    %v\n", snap.Betti)
			}
			if err := snap.Verify(); err != nil {
				return err
			}
			fmt.Fprintln(out, "verified: ok")
			return nil
		},
	}
}

func newCheckpointsDeleteCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <run-id>",
		Short: "Delete a checkpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := loadStore(ctx, *configPath)
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Delete(ctx, args[0])
		},
	}
}
