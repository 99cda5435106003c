// Package cli implements the hpudiagram command-line interface.
//
// Running hpudiagram without a subcommand renders the detailed and the
// simplified HPU/ATU architecture diagrams into the output directory and
// prints one confirmation line per written file.
//
// # Commands
//
//   - render: Render the diagrams (same as the root command)
//   - dot: Print the DOT source of one diagram
//   - config: Print the effective configuration
//   - completion: Generate shell completion scripts
//
// # Configuration
//
// Flags take precedence over keys read from the TOML or YAML file given with
// --config, which take precedence over the built-in defaults.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hpudiagram/pkg/buildinfo"
	"github.com/matzehuels/hpudiagram/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "hpudiagram"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	opts       pipeline.Options // bound to the command-line flags
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Without a subcommand it renders every diagram.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Render the HPU/ATU architecture diagrams",
		Long:          `hpudiagram renders the HPU (Hybrid Pivot-selection Unit) and ATU (Address Translation Unit) architecture as a detailed and a simplified Graphviz diagram.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	c.bindLabelFlags(root)
	c.bindRenderFlags(root)

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Options Helpers
// =============================================================================

// options returns the effective pipeline options for cmd: the flag values,
// completed by the config file for flags the user did not set.
func (c *CLI) options(cmd *cobra.Command) (pipeline.Options, error) {
	opts := c.opts
	if c.configPath != "" {
		if err := applyConfigFile(cmd, c.configPath, &opts); err != nil {
			return pipeline.Options{}, err
		}
	}
	opts.Logger = c.Logger
	if err := opts.Validate(); err != nil {
		return pipeline.Options{}, err
	}
	return opts, nil
}
