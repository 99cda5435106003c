package fonts

import (
	"sync"
	"testing"
)

func withInstalled(t *testing.T, paths ...string) {
	t.Helper()
	orig := lister
	lister = func() []string { return paths }
	installed = nil
	installedOnce = sync.Once{}
	t.Cleanup(func() {
		lister = orig
		installed = nil
		installedOnce = sync.Once{}
	})
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Microsoft YaHei", "microsoftyahei"},
		{"Noto-Sans_CJK SC", "notosanscjksc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalize(tt.in); got != tt.want {
			t.Errorf("normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInstalled(t *testing.T) {
	withInstalled(t,
		"/usr/share/fonts/truetype/msyh.ttc",
		"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	)

	tests := []struct {
		family string
		want   bool
	}{
		{"Microsoft YaHei", true},
		{"Noto Sans CJK SC", true},
		{"DejaVu Sans", true},
		{"SimHei", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.family, func(t *testing.T) {
			if got := Installed(tt.family); got != tt.want {
				t.Errorf("Installed(%q) = %v, want %v", tt.family, got, tt.want)
			}
		})
	}
}

func TestInstalledNoFonts(t *testing.T) {
	withInstalled(t)
	if Installed(DefaultFamily) {
		t.Errorf("Installed(%q) = true with no fonts installed", DefaultFamily)
	}
}
