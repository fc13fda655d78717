package textsvg

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"

	"github.com/npillmayer/textsvg/outline"
)

// DefaultClass is the CSS class of generated SVG root elements.
const DefaultClass = "title-svg"

// Options control rendering.
type Options struct {
	Class     string // CSS class of the SVG root element
	Precision int    // number of decimals for path coordinates
	Normalize bool   // apply Unicode NFC normalization before rendering
	Workers   int    // maximum number of concurrent renderings in a batch
}

// Option is a functional option for a Renderer.
type Option func(*Options)

// DefaultOptions returns the options used if no options are given.
func DefaultOptions() Options {
	return Options{
		Class:     DefaultClass,
		Precision: outline.DefaultPrecision,
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// WithClass sets the CSS class of the SVG root element. An empty class
// suppresses the attribute.
func WithClass(class string) Option {
	return func(o *Options) {
		o.Class = class
	}
}

// WithPrecision sets the number of decimals for path coordinates.
// Negative values are ignored.
func WithPrecision(decimals int) Option {
	return func(o *Options) {
		if decimals >= 0 {
			o.Precision = decimals
		}
	}
}

// WithNormalization switches Unicode NFC normalization of input text on or off.
// With normalization on, a decomposed sequence like "e" + U+0301 renders with
// the precomposed glyph "é", if the font has one.
func WithNormalization(on bool) Option {
	return func(o *Options) {
		o.Normalize = on
	}
}

// WithWorkers limits the number of concurrent renderings of RenderBatch.
// Values < 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Workers = n
		}
	}
}

// Configuration keys recognized by OptionsFromConfig.
const (
	ConfClass     = "textsvg.class"
	ConfPrecision = "textsvg.precision"
	ConfNormalize = "textsvg.normalize"
	ConfWorkers   = "textsvg.workers"
)

// OptionsFromConfig reads rendering options from an application
// configuration. Keys which are not set leave the corresponding default
// untouched. Malformed values of keys which are set are reported as an error.
//
// Numbers and booleans are parsed here rather than by GetInt and GetBool of
// the configuration, which report 0 or false for values they cannot parse.
func OptionsFromConfig(conf schuko.Configuration) ([]Option, error) {
	var opts []Option
	if conf.IsSet(ConfClass) {
		// an empty class suppresses the attribute
		opts = append(opts, WithClass(conf.GetString(ConfClass)))
	}
	if conf.IsSet(ConfPrecision) {
		s := strings.TrimSpace(conf.GetString(ConfPrecision))
		prec, err := strconv.Atoi(s)
		if err != nil || prec < 0 {
			return nil, fmt.Errorf("config %s: invalid precision %q", ConfPrecision, s)
		}
		opts = append(opts, WithPrecision(prec))
	}
	if conf.IsSet(ConfNormalize) {
		s := strings.TrimSpace(conf.GetString(ConfNormalize))
		on, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", ConfNormalize, err)
		}
		opts = append(opts, WithNormalization(on))
	}
	if conf.IsSet(ConfWorkers) {
		s := strings.TrimSpace(conf.GetString(ConfWorkers))
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("config %s: invalid number of workers %q", ConfWorkers, s)
		}
		opts = append(opts, WithWorkers(n))
	}
	return opts, nil
}
