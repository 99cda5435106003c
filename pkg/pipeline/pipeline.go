// Package pipeline provides the render pipeline for the HPU/ATU diagrams.
//
// This package implements the build → serialize → render → write sequence
// shared by every command. Centralizing it keeps the defaults, validation
// and file handling identical for the root command, "render" and "dot".
//
// # Architecture
//
// A run consists of four steps per diagram variant:
//
//  1. Build: Construct the diagram graph ([hpuatu.BuildDetailed] or
//     [hpuatu.BuildSimplified])
//  2. Serialize: Convert the graph to DOT ([nodelink.ToDOT])
//  3. Render: Ask an engine for image bytes in the configured format
//  4. Write: Commit the image atomically to <output_dir>/<name>.<ext>
//
// Variants are rendered sequentially; the first failure aborts the run.
//
// # Usage
//
// Create a Runner and render both variants:
//
//	runner, err := pipeline.NewRunner(opts, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = runner.Run(ctx, opts, func(a pipeline.Artifact) {
//	    fmt.Println(a.Path)
//	})
//
// Render a single graph:
//
//	g, _ := hpuatu.BuildDetailed(hpuatu.Options{})
//	artifact, err := runner.Render(ctx, g, "custom_name", opts)
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/hpudiagram/pkg/errors"
	"github.com/matzehuels/hpudiagram/pkg/fonts"
	"github.com/matzehuels/hpudiagram/pkg/hpuatu"
	"github.com/matzehuels/hpudiagram/pkg/render"
	"github.com/matzehuels/hpudiagram/pkg/render/nodelink"
)

// =============================================================================
// Default Values - Single Source of Truth for every command
// =============================================================================

const (
	// DefaultOutputDir is the directory images are written to.
	DefaultOutputDir = "."

	// DefaultScale renders PNG output at the engine's native resolution.
	DefaultScale = 1.0

	// SourceExt is the extension of kept DOT source files.
	SourceExt = ".gv"
)

// DefaultFormat is the default image format.
const DefaultFormat = render.DefaultFormat

// DefaultEngine is the default layout engine.
const DefaultEngine = nodelink.EngineEmbedded

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// The struct tags name the keys accepted in TOML and YAML configuration files.
type Options struct {
	// Render options
	Format  string  `toml:"format" yaml:"format"`
	Engine  string  `toml:"engine" yaml:"engine"`
	DotPath string  `toml:"dot_path" yaml:"dot_path"`
	Scale   float64 `toml:"scale" yaml:"scale"`

	// Label options
	FontName string  `toml:"font" yaml:"font"`
	FontSize float64 `toml:"font_size" yaml:"font_size"`
	Lang     string  `toml:"lang" yaml:"lang"`

	// Output options
	OutputDir  string   `toml:"output_dir" yaml:"output_dir"`
	KeepSource bool     `toml:"keep_source" yaml:"keep_source"`
	Variants   []string `toml:"variants" yaml:"variants"`

	// Runtime options (not serialized)
	Logger *log.Logger `toml:"-" yaml:"-"`
}

// Artifact describes one image written by the pipeline.
type Artifact struct {
	Variant  string        // Variant name, or the output name for ad-hoc graphs
	Name     string        // Output base name without extension
	Path     string        // Path of the written image
	Source   string        // Path of the kept DOT source, empty unless KeepSource
	Bytes    int           // Image size
	Duration time.Duration // Time spent rendering and writing
	Message  string        // Localized confirmation line
}

// Base returns the image file name without its directory.
func (a Artifact) Base() string {
	return baseName(a.Path)
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills zero-valued fields with their defaults.
func (o *Options) SetDefaults() {
	if o.Format == "" {
		o.Format = string(DefaultFormat)
	}
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.DotPath == "" {
		o.DotPath = nodelink.DefaultDotPath
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.FontName == "" {
		o.FontName = fonts.DefaultFamily
	}
	if o.FontSize == 0 {
		o.FontSize = fonts.DefaultSize
	}
	if o.Lang == "" {
		o.Lang = hpuatu.LangChinese
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if len(o.Variants) == 0 {
		o.Variants = []string{VariantAll}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks every field, returning a coded error
// for the first invalid one.
func (o *Options) Validate() error {
	o.SetDefaults()

	if _, err := render.ParseFormat(o.Format); err != nil {
		return err
	}
	if !slices.Contains(nodelink.Engines, o.Engine) {
		return errors.New(errors.ErrCodeInvalidEngine, "invalid engine: %q (must be one of: %s)", o.Engine, strings.Join(nodelink.Engines, ", "))
	}
	if _, ok := hpuatu.LabelsFor(o.Lang); !ok {
		return errors.New(errors.ErrCodeInvalidLanguage, "invalid language: %q (must be one of: %s)", o.Lang, strings.Join(hpuatu.Languages, ", "))
	}
	if o.FontSize < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "font size must be positive, got %g", o.FontSize)
	}
	if o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	if _, err := ResolveVariants(o.Variants); err != nil {
		return err
	}
	return nil
}

// RenderFormat returns the parsed output format.
func (o *Options) RenderFormat() render.Format {
	f, err := render.ParseFormat(o.Format)
	if err != nil {
		return DefaultFormat
	}
	return f
}

// BuildOptions returns the diagram builder options.
func (o *Options) BuildOptions() hpuatu.Options {
	return hpuatu.Options{FontName: o.FontName, FontSize: o.FontSize, Lang: o.Lang}
}

// EngineOptions returns the engine options.
func (o *Options) EngineOptions() nodelink.EngineOptions {
	return nodelink.EngineOptions{DotPath: o.DotPath, Scale: o.Scale}
}

// Summary returns a human-readable description of the effective options.
func (o *Options) Summary() string {
	return fmt.Sprintf("format=%s engine=%s lang=%s font=%q output_dir=%s", o.Format, o.Engine, o.Lang, o.FontName, o.OutputDir)
}
