package pipeline

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/hpudiagram/pkg/diagram"
	"github.com/matzehuels/hpudiagram/pkg/errors"
	"github.com/matzehuels/hpudiagram/pkg/hpuatu"
)

// Variant names.
const (
	VariantDetailed   = "detailed"
	VariantSimplified = "simplified"
	VariantAll        = "all"
)

// Variant is one of the diagrams the pipeline knows how to build.
type Variant struct {
	Name   string // Selector used by --variant and the dot command
	Output string // Output base name without extension
	Build  func(hpuatu.Options) (*diagram.Graph, error)

	confirm func(hpuatu.Labels) string
}

// Confirmation returns the line printed after the variant was written to a
// file named base.
func (v Variant) Confirmation(lang, base string) string {
	labels, ok := hpuatu.LabelsFor(lang)
	if !ok {
		labels, _ = hpuatu.LabelsFor(hpuatu.LangChinese)
	}
	return fmt.Sprintf(v.confirm(labels), base)
}

// registry lists the variants in render order.
var registry = []Variant{
	{
		Name:    VariantDetailed,
		Output:  "hpu_atu_detailed",
		Build:   hpuatu.BuildDetailed,
		confirm: func(l hpuatu.Labels) string { return l.DetailedSaved },
	},
	{
		Name:    VariantSimplified,
		Output:  "hpu_atu_simplified",
		Build:   hpuatu.BuildSimplified,
		confirm: func(l hpuatu.Labels) string { return l.SimplifiedSaved },
	},
}

// Variants returns every registered variant in render order.
func Variants() []Variant {
	return slices.Clone(registry)
}

// VariantNames returns the accepted --variant values.
func VariantNames() []string {
	names := make([]string, 0, len(registry)+1)
	for _, v := range registry {
		names = append(names, v.Name)
	}
	return append(names, VariantAll)
}

// LookupVariant returns the variant registered under name.
func LookupVariant(name string) (Variant, error) {
	for _, v := range registry {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, errors.New(errors.ErrCodeInvalidVariant, "invalid variant: %q (must be one of: %s)", name, strings.Join(VariantNames(), ", "))
}

// ResolveVariants expands names into variants in render order. "all" selects
// every variant; duplicates are rendered once.
func ResolveVariants(names []string) ([]Variant, error) {
	selected := make(map[string]bool)
	for _, name := range names {
		if name == VariantAll {
			for _, v := range registry {
				selected[v.Name] = true
			}
			continue
		}
		v, err := LookupVariant(name)
		if err != nil {
			return nil, err
		}
		selected[v.Name] = true
	}

	var out []Variant
	for _, v := range registry {
		if selected[v.Name] {
			out = append(out, v)
		}
	}
	return out, nil
}
