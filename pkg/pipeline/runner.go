package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hpudiagram/pkg/diagram"
	"github.com/matzehuels/hpudiagram/pkg/errors"
	"github.com/matzehuels/hpudiagram/pkg/fonts"
	"github.com/matzehuels/hpudiagram/pkg/observability"
	"github.com/matzehuels/hpudiagram/pkg/render/nodelink"
)

// Runner executes the pipeline with a fixed layout engine.
//
// The Runner holds no per-run state, so the same Runner can render any
// number of graphs with different options.
type Runner struct {
	Engine nodelink.Engine
	Logger *log.Logger
}

// NewRunner creates a runner using the engine selected by opts.
// If logger is nil, log.Default() is used.
func NewRunner(opts Options, logger *log.Logger) (*Runner, error) {
	opts.SetDefaults()
	engine, err := nodelink.NewEngine(opts.Engine, opts.EngineOptions())
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Engine: engine, Logger: logger}, nil
}

// Run renders every variant selected by opts.Variants in order and calls
// onDone after each image is written. It stops at the first error; images
// written by earlier variants are kept.
func (r *Runner) Run(ctx context.Context, opts Options, onDone func(Artifact)) error {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return err
	}
	variants, err := ResolveVariants(opts.Variants)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create output directory %s", opts.OutputDir)
	}
	if !fonts.Installed(opts.FontName) {
		opts.Logger.Warn("font not installed, labels may fall back to another family", "font", opts.FontName)
	}

	for _, v := range variants {
		a, err := r.RenderVariant(ctx, v, opts)
		if err != nil {
			return err
		}
		if onDone != nil {
			onDone(a)
		}
	}
	return nil
}

// RenderVariant builds the variant's graph and renders it to its output name.
func (r *Runner) RenderVariant(ctx context.Context, v Variant, opts Options) (Artifact, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return Artifact{}, err
	}

	g, err := Build(ctx, v, opts)
	if err != nil {
		return Artifact{}, err
	}

	a, err := r.render(ctx, g, v.Name, v.Output, opts)
	if err != nil {
		return Artifact{}, err
	}
	a.Message = v.Confirmation(opts.Lang, a.Base())
	return a, nil
}

// Render serializes g and writes it to <OutputDir>/<name>.<format>.
//
// On failure no image file and no kept source remain for this call.
func (r *Runner) Render(ctx context.Context, g *diagram.Graph, name string, opts Options) (Artifact, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return Artifact{}, err
	}
	return r.render(ctx, g, name, name, opts)
}

func (r *Runner) render(ctx context.Context, g *diagram.Graph, variant, name string, opts Options) (a Artifact, err error) {
	if err := errors.ValidateOutputName(name); err != nil {
		return Artifact{}, err
	}
	if err := g.Validate(); err != nil {
		return Artifact{}, errors.Wrap(errors.ErrCodeInvalidGraph, err, "graph %s", g.Name())
	}
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}

	format := opts.RenderFormat()
	a = Artifact{
		Variant: variant,
		Name:    name,
		Path:    filepath.Join(opts.OutputDir, name+format.Ext()),
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, variant, format.String(), r.Engine.Name())
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, variant, format.String(), a.Bytes, time.Since(start), err)
	}()

	dot := nodelink.ToDOT(g)
	opts.Logger.Debug("serialized graph", "name", g.Name(), "bytes", len(dot))

	if opts.KeepSource {
		source := filepath.Join(opts.OutputDir, name+SourceExt)
		if err := writeFileAtomic(source, []byte(dot)); err != nil {
			return Artifact{}, err
		}
		defer func() {
			if err != nil {
				_ = os.Remove(source)
			}
		}()
		a.Source = source
	}

	data, err := r.Engine.Render(ctx, dot, format)
	if err != nil {
		return Artifact{}, err
	}
	if err := writeFileAtomic(a.Path, data); err != nil {
		return Artifact{}, err
	}

	a.Bytes = len(data)
	a.Duration = time.Since(start)
	hooks.OnWrite(ctx, a.Path, a.Bytes)
	opts.Logger.Info("rendered diagram",
		"file", a.Path,
		"engine", r.Engine.Name(),
		"bytes", a.Bytes,
		"duration", a.Duration)
	return a, nil
}

// Build constructs the variant's graph, reporting to the pipeline hooks.
func Build(ctx context.Context, v Variant, opts Options) (*diagram.Graph, error) {
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, v.Name)
	start := time.Now()

	g, err := v.Build(opts.BuildOptions())
	if err != nil {
		hooks.OnBuildComplete(ctx, v.Name, 0, 0, time.Since(start), err)
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build %s diagram", v.Name)
	}
	hooks.OnBuildComplete(ctx, v.Name, g.NodeCount(), g.EdgeCount(), time.Since(start), nil)
	return g, nil
}

// DOT builds the named variant and returns its DOT source.
func DOT(ctx context.Context, variant string, opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	v, err := LookupVariant(variant)
	if err != nil {
		return "", err
	}
	g, err := Build(ctx, v, opts)
	if err != nil {
		return "", err
	}
	return nodelink.ToDOT(g), nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
