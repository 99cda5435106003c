// Package fonts resolves the display font used for diagram labels.
//
// Graphviz looks fonts up by family name and silently substitutes a default
// when the family is missing, which turns CJK labels into boxes. This package
// checks the installed font files up front so the CLI can warn instead.
package fonts

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
)

// DefaultFamily is the font family used for labels when none is configured.
// It covers the Chinese label set.
const DefaultFamily = "Microsoft YaHei"

// DefaultSize is the default label font size in points.
const DefaultSize = 10.0

// FallbackFamilies lists CJK-capable families worth suggesting when the
// configured family is not installed.
var FallbackFamilies = []string{"Microsoft YaHei", "Noto Sans CJK SC", "Source Han Sans SC", "PingFang SC", "SimHei", "WenQuanYi Micro Hei"}

// fileAliases maps normalized family names to the file name stems that
// ship them. Families whose files are named after the family need no entry.
var fileAliases = map[string][]string{
	"microsoftyahei":    {"msyh", "msyhbd", "msyhl"},
	"simhei":            {"simhei"},
	"notosanscjksc":     {"notosanscjk", "notosanscjksc", "notosanscjkscregular"},
	"sourcehansanssc":   {"sourcehansans", "sourcehansanssc", "sourcehansansscregular"},
	"wenquanyimicrohei": {"wqymicrohei"},
	"pingfangsc":        {"pingfang"},
}

// lister returns the installed font file paths. Swapped in tests.
var lister = findfont.List

var (
	installed     []string
	installedOnce sync.Once
)

func installedStems() []string {
	installedOnce.Do(func() {
		for _, path := range lister() {
			base := filepath.Base(path)
			installed = append(installed, normalize(strings.TrimSuffix(base, filepath.Ext(base))))
		}
	})
	return installed
}

// Installed reports whether a font file for family appears to be installed.
// Matching is by file name, so it is a best-effort check.
func Installed(family string) bool {
	key := normalize(family)
	if key == "" {
		return false
	}
	candidates := append([]string{key}, fileAliases[key]...)
	for _, stem := range installedStems() {
		for _, c := range candidates {
			if stem == c || strings.HasPrefix(stem, c) {
				return true
			}
		}
	}
	return false
}

// normalize lowercases s and drops spaces, dashes and underscores so that
// "Noto Sans CJK SC" and "NotoSansCJKsc" compare equal.
func normalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '-', '_':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
