package render

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/koyomi-lab/koyomi/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Format identifies an output format
type Format string

const (
	FormatHTML Format = "html"
	FormatPNG  Format = "png"
	FormatICS  Format = "ics"
)

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatHTML:
		return FormatHTML, nil
	case FormatPNG:
		return FormatPNG, nil
	case FormatICS:
		return FormatICS, nil
	}
	return "", goerr.New("unknown output format", goerr.V("format", s))
}

// FormatForPath infers the format from a file extension, defaulting to
// HTML when the extension is unknown
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG
	case ".ics":
		return FormatICS
	default:
		return FormatHTML
	}
}

// ContentType returns the MIME type of the format
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatICS:
		return "text/calendar; charset=utf-8"
	default:
		return "text/html; charset=utf-8"
	}
}

// Renderer writes a year calendar to an output stream
type Renderer interface {
	Render(w io.Writer, cal *model.YearCalendar) error
}

// Options carries renderer tuning knobs
type Options struct {
	// FontPath points to a TTF file for the PNG renderer. Empty uses the
	// built-in bitmap face.
	FontPath string
}

// New creates a renderer for the format
func New(format Format, opts Options) (Renderer, error) {
	switch format {
	case FormatHTML:
		return NewHTML()
	case FormatPNG:
		return NewPNG(opts.FontPath), nil
	case FormatICS:
		return NewICS(), nil
	}
	return nil, goerr.New("unknown output format", goerr.V("format", string(format)))
}
