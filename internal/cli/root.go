package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization
// with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the mgn CLI and returns an error if any command fails.
// This is the main entry point for the CLI application. The context
// bounds the whole run; cancelling it aborts long enumerations and rank
// computations.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree.
// The logger is attached to the context and accessible to all commands
// via loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "mgn",
		Short:        "mgn computes the homology of moduli spaces of punctured surfaces",
		Long:         `mgn enumerates the fatgraph cell decomposition of the moduli space M_{g,n} of genus-g surfaces with n punctures and computes its homology with exact integer arithmetic.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("mgn %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.config/mgn/config.toml)")

	root.AddCommand(newValencesCmd())
	root.AddCommand(newGraphsCmd(&configPath))
	root.AddCommand(newHomologyCmd(&configPath))
	root.AddCommand(newSelftestCmd())
	root.AddCommand(newCheckpointsCmd(&configPath))

	return root.ExecuteContext(ctx)
}

// parseSurface parses the positional <genus> <punctures> arguments
// shared by most commands.
func parseSurface(args []string) (g, n int, err error) {
	g, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("genus %q is not an integer", args[0])
	}
	n, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("puncture count %q is not an integer", args[1])
	}
	return g, n, nil
}
