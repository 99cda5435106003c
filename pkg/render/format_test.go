package render

import (
	"testing"

	"github.com/matzehuels/hpudiagram/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"svg", FormatSVG, false},
		{"jpg", FormatJPG, false},
		{"pdf", FormatPDF, false},
		{"PNG", "", true}, // case-sensitive
		{"gif", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ParseFormat(%q) code = %v, want %v", tt.in, errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatExt(t *testing.T) {
	if got := FormatPNG.Ext(); got != ".png" {
		t.Errorf("Ext() = %q, want .png", got)
	}
	if DefaultFormat != FormatPNG {
		t.Errorf("DefaultFormat = %q, want png", DefaultFormat)
	}
}

func TestConvertWithoutRsvg(t *testing.T) {
	orig := rsvgConvertBin
	rsvgConvertBin = "rsvg-convert-does-not-exist"
	defer func() { rsvgConvertBin = orig }()

	_, err := ToPDF([]byte("<svg/>"))
	if !errors.Is(err, errors.ErrCodeEngineUnavailable) {
		t.Errorf("ToPDF() error = %v, want ENGINE_UNAVAILABLE", err)
	}
	_, err = ToPNG([]byte("<svg/>"), 2)
	if !errors.Is(err, errors.ErrCodeEngineUnavailable) {
		t.Errorf("ToPNG() error = %v, want ENGINE_UNAVAILABLE", err)
	}
}
