package sassrender

import (
	"fmt"
	"strings"

	"github.com/thatguystone/sassrender/sass"
)

// A RenderFunc renders a file against a Context. Errors from the compiler are
// returned exactly as the compiler produced them: libsass reports the source
// and line (`Error > stdin:2`), then the message and the offending source,
// with no caret marker under it.
type RenderFunc func(ctx *Context, file File, locals Locals) (string, error)

// New creates a RenderFunc for the given syntax. It panics if syntax is
// neither SCSS nor Sass.
func New(syntax Syntax) RenderFunc {
	if !syntax.valid() {
		panic(fmt.Errorf("unknown sass syntax: %q", syntax))
	}

	indented := syntax == Sass

	return func(ctx *Context, file File, _ Locals) (string, error) {
		opts := sass.Defaults()
		opts.Data = file.Text
		opts.IndentedSyntax = indented

		// Configured options go on last: they win, even over data and
		// indentedSyntax
		err := opts.Apply(ctx.CompilerOptions())
		if err != nil {
			return "", err
		}

		css, err := sass.Compile(opts)
		if err != nil {
			return "", err
		}

		return strings.TrimRight(css, "\r\n"), nil
	}
}
