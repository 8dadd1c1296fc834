package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mgn/pkg/homology"
)

// selftestCase pins a surface type to its known Betti numbers.
type selftestCase struct {
	g, n  int
	betti []int
}

// Fast cases finish in seconds; the extended ones enumerate much larger
// matching spaces and can run for minutes.
var (
	selftestFast = []selftestCase{
		{0, 3, []int{1, 0, 0}},
		{0, 4, []int{1, 2, 0, 0, 0, 0}},
		{1, 1, []int{1, 0, 0}},
		{1, 2, []int{1, 0, 0, 0, 0, 0}},
	}
	selftestExtended = []selftestCase{
		{0, 5, []int{1, 5, 6, 0, 0, 0, 0, 0, 0}},
		{2, 1, []int{1, 0, 1, 0, 0, 0, 0, 0, 0}},
	}
)

func newSelftestCmd() *cobra.Command {
	var extended bool

	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Recompute surface types with known homology and compare",
		Long: `Selftest recomputes the homology of surface types whose Betti
numbers are known from the literature and fails if any disagree. It
exercises the whole pipeline: enumeration, marking orbits, boundary
operators and exact ranks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			out := cmd.OutOrStdout()

			cases := selftestFast
			if extended {
				cases = append(slices.Clone(cases), selftestExtended...)
			}

			failures := 0
			for _, tc := range cases {
				p := newProgress(logger)
				res, err := homology.Compute(ctx, tc.g, tc.n, homology.Options{Logger: logger})
				if err != nil {
					return fmt.Errorf("M_{%d,%d}: %w", tc.g, tc.n, err)
				}
				p.done(fmt.Sprintf("M_{%d,%d}", tc.g, tc.n))
				if slices.Equal(res.Betti, tc.betti) {
					fmt.Fprintf(out, "ok    M_{%d,%d}  h = %v\n", tc.g, tc.n, res.Betti)
				} else {
					failures++
					fmt.Fprintf(out, "FAIL  M_{%d,%d}  h = %v, want %v\n", tc.g, tc.n, res.Betti, tc.betti)
				}
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d selftest cases failed", failures, len(cases))
			}
			fmt.Fprintf(out, "all %d cases passed\n", len(cases))
			return nil
		},
	}

	cmd.Flags().BoolVar(&extended, "extended", false, "also run the slow cases (0,5) and (2,1)")
	return cmd
}
