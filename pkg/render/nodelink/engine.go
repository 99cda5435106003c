package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/hpudiagram/pkg/errors"
	"github.com/matzehuels/hpudiagram/pkg/observability"
	"github.com/matzehuels/hpudiagram/pkg/render"
)

// Engine names accepted by [NewEngine].
const (
	EngineEmbedded = "embedded"
	EngineDot      = "dot"
)

// DefaultDotPath is the Graphviz executable looked up on PATH by [ExecEngine].
const DefaultDotPath = "dot"

// Engines lists the supported engine names.
var Engines = []string{EngineEmbedded, EngineDot}

// Engine lays out a DOT graph and rasterizes it.
type Engine interface {
	// Name identifies the engine in logs.
	Name() string
	// Render returns the image bytes for dot in the given format.
	Render(ctx context.Context, dot string, format render.Format) ([]byte, error)
}

// EngineOptions configures [NewEngine].
type EngineOptions struct {
	DotPath string  // Graphviz executable for the "dot" engine
	Scale   float64 // PNG scale factor; 0 or 1 renders at native resolution
}

// NewEngine returns the engine registered under name.
func NewEngine(name string, opts EngineOptions) (Engine, error) {
	switch name {
	case EngineEmbedded, "":
		return &EmbeddedEngine{Scale: opts.Scale}, nil
	case EngineDot:
		path := opts.DotPath
		if path == "" {
			path = DefaultDotPath
		}
		return &ExecEngine{Path: path, Scale: opts.Scale}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidEngine, "invalid engine: %q (must be one of %s)", name, strings.Join(Engines, ", "))
	}
}

func scaled(scale float64) bool { return scale > 0 && scale != 1 }

// EmbeddedEngine renders in-process with the WebAssembly build of Graphviz
// from github.com/goccy/go-graphviz. PNG, SVG and JPG are produced directly;
// PDF and scaled PNG go through SVG and rsvg-convert.
type EmbeddedEngine struct {
	Scale float64
}

// Name implements [Engine].
func (e *EmbeddedEngine) Name() string { return EngineEmbedded }

// Render implements [Engine].
func (e *EmbeddedEngine) Render(ctx context.Context, dot string, format render.Format) ([]byte, error) {
	switch format {
	case render.FormatSVG:
		return renderEmbedded(ctx, dot, graphviz.SVG)
	case render.FormatJPG:
		return renderEmbedded(ctx, dot, graphviz.JPG)
	case render.FormatPNG:
		if !scaled(e.Scale) {
			return renderEmbedded(ctx, dot, graphviz.PNG)
		}
		svg, err := renderEmbedded(ctx, dot, graphviz.SVG)
		if err != nil {
			return nil, err
		}
		return render.ToPNG(svg, e.Scale)
	case render.FormatPDF:
		svg, err := renderEmbedded(ctx, dot, graphviz.SVG)
		if err != nil {
			return nil, err
		}
		return render.ToPDF(svg)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
	}
}

func renderEmbedded(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEngineUnavailable, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

// ExecEngine renders by running the Graphviz dot executable, feeding the DOT
// source on stdin.
type ExecEngine struct {
	Path  string  // Executable name or path
	Scale float64 // PNG scale factor, applied through the dpi attribute
}

// Name implements [Engine].
func (e *ExecEngine) Name() string { return EngineDot }

// Render implements [Engine].
func (e *ExecEngine) Render(ctx context.Context, dot string, format render.Format) ([]byte, error) {
	bin, err := exec.LookPath(e.Path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEngineUnavailable, err,
			"graphviz executable %q not found. Install with:\n  macOS:  brew install graphviz\n  Linux:  apt install graphviz", e.Path)
	}

	args := []string{"-T" + format.String()}
	if format == render.FormatPNG && scaled(e.Scale) {
		args = append(args, fmt.Sprintf("-Gdpi=%.0f", 96*e.Scale))
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = strings.NewReader(dot)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	start := time.Now()
	err = cmd.Run()
	observability.Engine().OnExec(ctx, bin, args, time.Since(start), err)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s: %w", e.Path, ctx.Err())
		}
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "%s: %s", e.Path, strings.TrimSpace(errBuf.String()))
	}
	return out.Bytes(), nil
}

// Compile-time interface checks.
var (
	_ Engine = (*EmbeddedEngine)(nil)
	_ Engine = (*ExecEngine)(nil)
)
