// Package sass compiles Sass and SCSS sources with libsass
package sass

import (
	"bytes"
	"strings"

	"github.com/thatguystone/sassrender/internal/min"
	libsass "github.com/wellington/go-libsass"
)

// Compile compiles opts.Data. Compiler errors are returned untouched so that
// their diagnostics reach the caller as libsass formatted them.
func Compile(opts Options) (string, error) {
	var buff bytes.Buffer

	comp, err := libsass.New(&buff, strings.NewReader(opts.Data),
		libsass.WithSyntax(opts.syntax()),
		libsass.OutputStyle(opts.style()),
		libsass.Comments(opts.SourceComments),
		libsass.Precision(opts.Precision),
		libsass.IncludePaths(opts.IncludePaths))
	if err != nil {
		return "", err
	}

	err = comp.Run()
	if err != nil {
		return "", err
	}

	css := buff.String()
	if opts.Minify {
		css, err = min.CSS(css)
	}

	return css, err
}
