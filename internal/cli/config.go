package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/hpudiagram/pkg/errors"
	"github.com/matzehuels/hpudiagram/pkg/fonts"
	"github.com/matzehuels/hpudiagram/pkg/pipeline"
)

// configKey maps a config file key to the flag that overrides it.
type configKey struct {
	key   string
	flag  string
	apply func(dst, src *pipeline.Options)
}

var configKeys = []configKey{
	{"format", "format", func(d, s *pipeline.Options) { d.Format = s.Format }},
	{"engine", "engine", func(d, s *pipeline.Options) { d.Engine = s.Engine }},
	{"dot_path", "dot-path", func(d, s *pipeline.Options) { d.DotPath = s.DotPath }},
	{"output_dir", "output-dir", func(d, s *pipeline.Options) { d.OutputDir = s.OutputDir }},
	{"keep_source", "keep-source", func(d, s *pipeline.Options) { d.KeepSource = s.KeepSource }},
	{"scale", "scale", func(d, s *pipeline.Options) { d.Scale = s.Scale }},
	{"font", "font", func(d, s *pipeline.Options) { d.FontName = s.FontName }},
	{"font_size", "font-size", func(d, s *pipeline.Options) { d.FontSize = s.FontSize }},
	{"lang", "lang", func(d, s *pipeline.Options) { d.Lang = s.Lang }},
	{"variants", "variant", func(d, s *pipeline.Options) { d.Variants = s.Variants }},
}

// applyConfigFile reads the config file at path and copies every key it
// defines into opts, unless the matching flag was set on the command line.
func applyConfigFile(cmd *cobra.Command, path string, opts *pipeline.Options) error {
	var file pipeline.Options
	defined, err := decodeConfig(path, &file)
	if err != nil {
		return err
	}

	for _, k := range configKeys {
		if defined[k.key] && !cmd.Flags().Changed(k.flag) {
			k.apply(opts, &file)
		}
	}
	return nil
}

// decodeConfig decodes a TOML file, or a YAML file when the extension is
// .yaml or .yml, and returns the set of top-level keys it defines.
func decodeConfig(path string, dst *pipeline.Options) (map[string]bool, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(path, dst)
	default:
		return decodeTOML(path, dst)
	}
}

func decodeTOML(path string, dst *pipeline.Options) (map[string]bool, error) {
	md, err := toml.DecodeFile(path, dst)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	defined := make(map[string]bool)
	for _, k := range md.Keys() {
		if len(k) == 1 {
			defined[k[0]] = true
		}
	}
	return defined, nil
}

func decodeYAML(path string, dst *pipeline.Options) (map[string]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(dst); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	defined := make(map[string]bool, len(raw))
	for k := range raw {
		defined[k] = true
	}
	return defined, nil
}

// configCommand creates the config command, which prints the effective
// configuration after flags and the config file are merged.
func (c *CLI) configCommand() *cobra.Command {
	var asTOML bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration a render would use.

With --toml the output is a valid config file that can be passed back with
--config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asTOML {
				return toml.NewEncoder(out).Encode(opts)
			}

			printKeyValue(out, "format", opts.Format)
			printKeyValue(out, "engine", opts.Engine)
			printKeyValue(out, "dot_path", opts.DotPath)
			printKeyValue(out, "output_dir", opts.OutputDir)
			printKeyValue(out, "keep_source", strconv.FormatBool(opts.KeepSource))
			printKeyValue(out, "scale", strconv.FormatFloat(opts.Scale, 'g', -1, 64))
			printKeyValue(out, "font", opts.FontName)
			printKeyValue(out, "font_size", strconv.FormatFloat(opts.FontSize, 'g', -1, 64))
			printKeyValue(out, "lang", opts.Lang)
			printKeyValue(out, "variants", strings.Join(opts.Variants, ","))

			if !fonts.Installed(opts.FontName) {
				printWarning(out, "font %q is not installed; installed fallbacks: %s", opts.FontName, installedFallbacks())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asTOML, "toml", false, "print the configuration as TOML")
	c.bindRenderFlags(cmd)
	return cmd
}

func installedFallbacks() string {
	var found []string
	for _, family := range fonts.FallbackFamilies {
		if fonts.Installed(family) {
			found = append(found, family)
		}
	}
	if len(found) == 0 {
		return "none"
	}
	return strings.Join(found, ", ")
}
