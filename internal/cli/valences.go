package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mgn/pkg/generate"
)

func newValencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "valences <genus> <punctures>",
		Short: "List the levels and valence sequences of a surface type",
		Long: `Valences prints, for each edge count occurring in the cell
decomposition of M_{g,n}, the vertex count forced by Euler's formula and
the admissible vertex valence sequences.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, n, err := parseSurface(args)
			if err != nil {
				return err
			}
			levels, err := generate.ValenceSequences(g, n)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "M_{%d,%d}: levels %d..%d\n", g, n, levels[0].Edges, levels[len(levels)-1].Edges)
			for _, lvl := range levels {
				fmt.Fprintf(out, "  L=%d  V=%d  %s\n", lvl.Edges, lvl.Vertices, formatValences(lvl.Valences))
			}
			return nil
		},
	}
}

func formatValences(seqs [][]int) string {
	parts := make([]string, len(seqs))
	for i, seq := range seqs {
		nums := make([]string, len(seq))
		for j, v := range seq {
			nums[j] = fmt.Sprintf("%d", v)
		}
		parts[i] = "(" + strings.Join(nums, ",") + ")"
	}
	return strings.Join(parts, " ")
}
