package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hpudiagram/pkg/errors"
	"github.com/matzehuels/hpudiagram/pkg/pipeline"
)

// dotCommand creates the dot command, which prints the Graphviz source of a
// diagram instead of rendering it.
func (c *CLI) dotCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:       "dot [detailed|simplified]",
		Short:     "Print the DOT source of a diagram",
		Long:      `Print the Graphviz DOT source of a diagram (default: detailed) to stdout, or write it to a file with -o.`,
		Example:   "  hpudiagram dot simplified --lang en | dot -Tsvg > simplified.svg",
		ValidArgs: []string{pipeline.VariantDetailed, pipeline.VariantSimplified},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant := pipeline.VariantDetailed
			if len(args) == 1 {
				variant = args[0]
			}

			opts, err := c.options(cmd)
			if err != nil {
				return err
			}
			dot, err := pipeline.DOT(cmd.Context(), variant, opts)
			if err != nil {
				return err
			}

			if output == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), dot)
				return err
			}
			if err := os.WriteFile(output, []byte(dot), 0o644); err != nil {
				return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", output)
			}
			printSuccess(cmd.OutOrStdout(), "DOT source saved as %s", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the DOT source to a file")
	return cmd
}
