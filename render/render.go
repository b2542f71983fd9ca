// This file declares the Options type, its enumerated bounds, and the
// mapstructure-based decoder.
package render

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Sentinel errors for option validation.
var (
	// ErrUnknownLayout indicates a layout outside the recognized set.
	ErrUnknownLayout = errors.New("render: unknown layout")
	// ErrSizeRange indicates a node or font size outside its bounds.
	ErrSizeRange = errors.New("render: size out of range")
)

// Layout names a graph layout algorithm a visualizer may apply.
type Layout string

// Recognized layouts.
const (
	LayoutSpring      Layout = "spring"
	LayoutCircular    Layout = "circular"
	LayoutKamadaKawai Layout = "kamada-kawai"
)

// Size bounds and defaults for nodes and labels.
const (
	MinNodeSize     = 10
	MaxNodeSize     = 50
	DefaultNodeSize = 20

	MinFontSize     = 8
	MaxFontSize     = 20
	DefaultFontSize = 10
)

// Options configures an external visualizer. Zero values are filled by
// DefaultOptions; Decode starts from those defaults.
type Options struct {
	// Layout selects the drawing algorithm.
	Layout Layout `mapstructure:"layout"`
	// NodeSize is the marker size, MinNodeSize..MaxNodeSize.
	NodeSize int `mapstructure:"nodeSize"`
	// FontSize is the label size, MinFontSize..MaxFontSize.
	FontSize int `mapstructure:"fontSize"`
	// DayColors overrides the default palette, one hex color per day.
	// When shorter than the day count, colors cycle.
	DayColors []string `mapstructure:"dayColors"`
}

// DefaultOptions returns spring layout, default sizes, and the stock
// palette.
func DefaultOptions() Options {
	return Options{
		Layout:    LayoutSpring,
		NodeSize:  DefaultNodeSize,
		FontSize:  DefaultFontSize,
		DayColors: DefaultPalette(),
	}
}

// Decode overlays raw (typically a decoded JSON object) onto the
// defaults and validates the result.
func Decode(raw map[string]any) (Options, error) {
	opts := DefaultOptions()
	if err := mapstructure.Decode(raw, &opts); err != nil {
		return Options{}, fmt.Errorf("render: decode options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks the layout and size bounds.
func (o Options) Validate() error {
	switch o.Layout {
	case LayoutSpring, LayoutCircular, LayoutKamadaKawai:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLayout, o.Layout)
	}
	if o.NodeSize < MinNodeSize || o.NodeSize > MaxNodeSize {
		return fmt.Errorf("%w: nodeSize %d not in [%d,%d]", ErrSizeRange, o.NodeSize, MinNodeSize, MaxNodeSize)
	}
	if o.FontSize < MinFontSize || o.FontSize > MaxFontSize {
		return fmt.Errorf("%w: fontSize %d not in [%d,%d]", ErrSizeRange, o.FontSize, MinFontSize, MaxFontSize)
	}
	return nil
}

// ColorForDay returns the color for a zero-based day index, cycling
// through the configured palette (or the default one when empty).
func (o Options) ColorForDay(day int) string {
	palette := o.DayColors
	if len(palette) == 0 {
		palette = DefaultPalette()
	}
	if day < 0 {
		day = 0
	}
	return palette[day%len(palette)]
}
