package sass

import (
	"fmt"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	libsass "github.com/wellington/go-libsass"
)

// Option keys understood by Apply. Anything else is ignored.
const (
	KeyData           = "data"
	KeyIndentedSyntax = "indentedSyntax"
	KeyOutputStyle    = "outputStyle"
	KeySourceComments = "sourceComments"
	KeyPrecision      = "precision"
	KeyIncludePaths   = "includePaths"
	KeyMinify         = "minify"
)

var styles = map[string]int{
	"nested":     libsass.NESTED_STYLE,
	"expanded":   libsass.EXPANDED_STYLE,
	"compact":    libsass.COMPACT_STYLE,
	"compressed": libsass.COMPRESSED_STYLE,
}

// Options is everything Compile needs to build a stylesheet
type Options struct {
	Data           string   `mapstructure:"data"`           // Source text
	IndentedSyntax bool     `mapstructure:"indentedSyntax"` // If Data is in the indented syntax
	OutputStyle    string   `mapstructure:"outputStyle"`    // One of nested, expanded, compact, compressed
	SourceComments bool     `mapstructure:"sourceComments"` // Emit line comments pointing back to the source
	Precision      int      `mapstructure:"precision"`      // Decimal places kept in numbers, at least 1
	IncludePaths   []string `mapstructure:"includePaths"`   // Search directories for imports
	Minify         bool     `mapstructure:"minify"`         // Run the output through a CSS minifier
}

// Defaults returns the Options used when nothing is configured
func Defaults() Options {
	return Options{
		OutputStyle: "expanded",
		Precision:   5,
	}
}

// Decode builds Options from a mapping of option names to values, on top of
// Defaults().
func Decode(m map[string]interface{}) (Options, error) {
	opts := Defaults()
	err := opts.Apply(m)
	return opts, err
}

// Apply overwrites every option set in m. Keys that aren't understood are
// skipped; keys with the wrong type of value are errors.
func (o *Options) Apply(m map[string]interface{}) error {
	if len(m) == 0 {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: decodeHook,
		Result:     o,
	})
	if err != nil {
		return err
	}

	err = dec.Decode(m)
	if err != nil {
		return errors.Wrap(err, "invalid options")
	}

	return o.validate()
}

func (o Options) validate() error {
	_, ok := styles[o.OutputStyle]
	if !ok {
		return errors.Errorf("invalid option %s: unknown style %q",
			KeyOutputStyle, o.OutputStyle)
	}

	if o.Precision < 1 {
		return errors.Errorf("invalid option %s: must be at least 1, got %d",
			KeyPrecision, o.Precision)
	}

	return nil
}

var stringsType = reflect.TypeOf([]string(nil))

// YAML hands back floats for some numbers and lets includePaths be a single
// string.
func decodeHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	switch {
	case to == stringsType && from.Kind() == reflect.String:
		return []string{reflect.ValueOf(data).String()}, nil

	case to.Kind() == reflect.Int && from.Kind() == reflect.Float64:
		f := reflect.ValueOf(data).Float()
		if f != math.Trunc(f) {
			return nil, fmt.Errorf("expected an integer, got %v", f)
		}
	}

	return data, nil
}

func (o Options) style() int {
	style, ok := styles[o.OutputStyle]
	if !ok {
		return libsass.EXPANDED_STYLE
	}

	return style
}

func (o Options) syntax() libsass.Syntax {
	if o.IndentedSyntax {
		return libsass.SassSyntax
	}

	return libsass.SCSSSyntax
}
