package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mgn/pkg/checkpoint"
	mgnerrors "github.com/matzehuels/mgn/pkg/errors"
	"github.com/matzehuels/mgn/pkg/homology"
)

func newHomologyCmd(configPath *string) *cobra.Command {
	var (
		workers int
		resume  string
		save    bool
		verify  bool
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "homology <genus> <punctures>",
		Short: "Compute the Betti numbers of M_{g,n}",
		Long: `Homology builds the marked fatgraph chain complex of M_{g,n} and
computes its homology ranks with exact integer arithmetic. Betti numbers
are listed by homological degree, starting at degree 0.

With --resume, the graph enumeration is restored from a stored
checkpoint instead of being recomputed; the snapshot is verified against
its claimed surface type before use.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, n, err := parseSurface(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			p := newProgress(logger)

			builder := homology.NewBuilder(logger)
			var c *homology.Complex
			if resume != "" {
				store, err := loadStore(ctx, *configPath)
				if err != nil {
					return err
				}
				defer store.Close()
				snap, err := store.Get(ctx, resume)
				if err != nil {
					return err
				}
				if snap.Genus != g || snap.Punctures != n {
					return mgnerrors.New(mgnerrors.ErrCodeCheckpointMismatch,
						"checkpoint %s is for (%d, %d), not (%d, %d)",
						resume, snap.Genus, snap.Punctures, g, n)
				}
				classes, err := snap.Restore()
				if err != nil {
					return err
				}
				logger.Info("resumed from checkpoint", "id", resume)
				c, err = builder.BuildFromClasses(ctx, g, n, classes)
				if err != nil {
					return err
				}
			} else {
				c, err = builder.Build(ctx, g, n)
				if err != nil {
					return err
				}
			}

			if verify {
				if err := c.Verify(); err != nil {
					return err
				}
				logger.Info("verified boundary operators square to zero")
			}

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if workers == 0 {
				workers = cfg.Compute.Workers
			}
			res, err := c.Homology(ctx, homology.Options{Workers: workers, Logger: logger})
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Computed homology of M_{%d,%d}", g, n))

			if chi, err := homology.IntegralEuler(g, n); err == nil {
				if got := res.EulerCharacteristic(); got != chi {
					return mgnerrors.New(mgnerrors.ErrCodeInternal,
						"alternating Betti sum %d contradicts Euler characteristic %d", got, chi)
				}
			} else if mgnerrors.GetCode(err) == mgnerrors.ErrCodeUnknownEuler {
				logger.Debug("no closed-form Euler characteristic to check against")
			} else {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprintf(out, "M_{%d,%d}: h = %v\n", g, n, res.Betti)
			for i, dim := range res.Dims {
				fmt.Fprintf(out, "  L=%d  dim=%d  rank=%d\n", res.MinEdges+i, dim, res.Ranks[i])
			}

			if save {
				store, err := loadStore(ctx, *configPath)
				if err != nil {
					return err
				}
				defer store.Close()
				snap := checkpoint.New(g, n)
				snap.Betti = res.Betti
				snap.Levels = levelSnapshots(c)
				if err := store.Set(ctx, snap); err != nil {
					return err
				}
				fmt.Fprintf(out, "checkpoint: %s\n", snap.ID)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent rank computations (default one per CPU)")
	cmd.Flags().StringVar(&resume, "resume", "", "restore the enumeration from a checkpoint run ID")
	cmd.Flags().BoolVar(&save, "save", false, "store the finished run as a checkpoint")
	cmd.Flags().BoolVar(&verify, "verify", false, "check that consecutive boundary operators compose to zero")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit the result as JSON")
	return cmd
}

// levelSnapshots extracts the class graphs of a built complex for
// checkpointing.
func levelSnapshots(c *homology.Complex) []checkpoint.LevelSnapshot {
	out := make([]checkpoint.LevelSnapshot, len(c.Levels))
	for i, lvl := range c.Levels {
		ls := checkpoint.LevelSnapshot{Edges: lvl.Edges}
		for _, cls := range lvl.ClassGraphs() {
			vertices := make([][]int, cls.NumVertices())
			for j, v := range cls.Vertices() {
				vertices[j] = append([]int(nil), v...)
			}
			ls.Classes = append(ls.Classes, vertices)
		}
		out[i] = ls
	}
	return out
}
