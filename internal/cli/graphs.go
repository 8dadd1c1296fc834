package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mgn/pkg/checkpoint"
	"github.com/matzehuels/mgn/pkg/fatgraph"
	"github.com/matzehuels/mgn/pkg/generate"
	"github.com/matzehuels/mgn/pkg/marking"
)

func newGraphsCmd(configPath *string) *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "graphs <genus> <punctures>",
		Short: "Enumerate fatgraph isomorphism classes of a surface type",
		Long: `Graphs enumerates one representative per fatgraph isomorphism class
for M_{g,n}, level by level, and reports each class's automorphism group
order and its marked cells (orientable / total marking orbits).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, n, err := parseSurface(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			p := newProgress(logger)

			levels, err := generate.NewGenerator(logger).Graphs(ctx, g, n)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			total := 0
			for _, lvl := range levels {
				fmt.Fprintf(out, "L=%d: %d classes\n", lvl.Edges, len(lvl.Classes))
				for _, cls := range lvl.Classes {
					auts := fatgraph.Automorphisms(cls)
					orbits := marking.OrbitsWithAutomorphisms(cls, auts)
					orientable := 0
					for _, mg := range orbits {
						if mg.IsOrientable() {
							orientable++
						}
					}
					fmt.Fprintf(out, "  %-24s |Aut|=%-3d cells=%d/%d\n",
						cls, len(auts), orientable, len(orbits))
					total++
				}
			}
			p.done(fmt.Sprintf("Enumerated %d classes", total))

			if save {
				store, err := loadStore(ctx, *configPath)
				if err != nil {
					return err
				}
				defer store.Close()
				snap := checkpoint.FromLevels(g, n, levels)
				if err := store.Set(ctx, snap); err != nil {
					return err
				}
				fmt.Fprintf(out, "checkpoint: %s\n", snap.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "store the enumeration as a checkpoint")
	return cmd
}

func loadStore(ctx context.Context, configPath string) (checkpoint.Store, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return cfg.openStore(ctx)
}
