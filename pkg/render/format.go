package render

import (
	"strings"

	"github.com/matzehuels/hpudiagram/pkg/errors"
)

// Format is an output image format.
type Format string

// Supported output formats.
const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatJPG Format = "jpg"
	FormatPDF Format = "pdf"
)

// DefaultFormat is used when no format is configured.
const DefaultFormat = FormatPNG

// Formats lists the supported formats in display order.
var Formats = []Format{FormatPNG, FormatSVG, FormatJPG, FormatPDF}

// Ext returns the file extension for f, including the leading dot.
func (f Format) Ext() string { return "." + string(f) }

// String returns the format name.
func (f Format) String() string { return string(f) }

// ParseFormat converts a format name into a [Format].
// Names are case-sensitive; an unknown name yields an INVALID_FORMAT error.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of %s)", s, strings.Join(names, ", "))
}
