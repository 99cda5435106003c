package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hpudiagram/pkg/fonts"
	"github.com/matzehuels/hpudiagram/pkg/hpuatu"
	"github.com/matzehuels/hpudiagram/pkg/pipeline"
	"github.com/matzehuels/hpudiagram/pkg/render"
	"github.com/matzehuels/hpudiagram/pkg/render/nodelink"
)

// renderCommand creates the render command. It behaves like the root command
// and exists so the diagrams can be rendered explicitly from scripts.
func (c *CLI) renderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the architecture diagrams to image files",
		Long: `Render the detailed and simplified HPU/ATU diagrams.

Output files are named hpu_atu_detailed.<ext> and hpu_atu_simplified.<ext>
and written to the output directory (default: current directory).`,
		Example: `  hpudiagram render
  hpudiagram render -f svg -o build/
  hpudiagram render --variant simplified --lang en
  hpudiagram render --engine dot --dot-path /usr/local/bin/dot --scale 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd)
		},
	}

	c.bindRenderFlags(cmd)
	return cmd
}

// bindLabelFlags registers the persistent flags that affect diagram content.
func (c *CLI) bindLabelFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.StringVar(&c.opts.FontName, "font", fonts.DefaultFamily, "label font family")
	f.Float64Var(&c.opts.FontSize, "font-size", fonts.DefaultSize, "label font size in points")
	f.StringVar(&c.opts.Lang, "lang", hpuatu.LangChinese, "label language: zh, en")
	f.StringVar(&c.configPath, "config", "", "read defaults from a TOML or YAML file")
}

// bindRenderFlags registers the flags that control rendering and output.
// The root and render commands share the same option values.
func (c *CLI) bindRenderFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&c.opts.Format, "format", "f", string(render.DefaultFormat), "output format: png, svg, jpg, pdf")
	f.StringVar(&c.opts.Engine, "engine", nodelink.EngineEmbedded, "layout engine: embedded, dot")
	f.StringVar(&c.opts.DotPath, "dot-path", nodelink.DefaultDotPath, "graphviz executable used by the dot engine")
	f.StringVarP(&c.opts.OutputDir, "output-dir", "o", pipeline.DefaultOutputDir, "directory for the rendered files")
	f.BoolVar(&c.opts.KeepSource, "keep-source", false, "also write the DOT source as <name>.gv")
	f.Float64Var(&c.opts.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	f.StringSliceVar(&c.opts.Variants, "variant", []string{pipeline.VariantAll}, "diagrams to render: detailed, simplified, all")
}

// runRender renders the selected diagrams and prints a confirmation line for
// every file written, including those written before a later failure.
func (c *CLI) runRender(cmd *cobra.Command) error {
	opts, err := c.options(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, cmd.ErrOrStderr(), "Rendering diagrams...")

	// Records logged during the run share stderr with the spinner.
	logger := c.Logger.With()
	logger.SetOutput(spinner.Writer(cmd.ErrOrStderr()))
	opts.Logger = logger

	runner, err := pipeline.NewRunner(opts, logger)
	if err != nil {
		return err
	}
	c.Logger.Debug("render options", "options", opts.Summary())

	spinner.Start()
	var artifacts []pipeline.Artifact
	runErr := runner.Run(ctx, opts, func(a pipeline.Artifact) {
		artifacts = append(artifacts, a)
	})
	if runErr != nil && !spinner.Cancelled() {
		spinner.StopWithError("Rendering failed")
	} else {
		spinner.Stop()
	}

	out := cmd.OutOrStdout()
	for _, a := range artifacts {
		printSuccess(out, "%s", a.Message)
		if a.Source != "" {
			printFile(out, a.Source)
		}
	}
	if runErr != nil {
		return runErr
	}

	prog.done(fmt.Sprintf("Rendered %d diagrams", len(artifacts)))
	return nil
}
