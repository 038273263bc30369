package sassrender

import (
	"log"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/thatguystone/sassrender/internal"
)

// ErrNoRenderer is returned when nothing is registered for a file's extension
var ErrNoRenderer = errors.New("no renderer registered")

// An Entry is a registered renderer
type Entry struct {
	Output string // Extension of what Render produces
	Render RenderFunc
}

// A Registry maps input extensions to renderers
type Registry struct {
	log *internal.Logger

	rwmtx     sync.RWMutex
	renderers map[string]Entry
}

// NewRegistry creates an empty Registry
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		log:       internal.NewLogger("sassrender", log.Printf),
		renderers: map[string]Entry{},
	}

	for _, opt := range opts {
		opt.applyTo(r)
	}

	return r
}

// RegisterSass registers the SCSS and indented syntax renderers, both
// producing css
func RegisterSass(r *Registry) {
	r.Register(string(SCSS), "css", New(SCSS))
	r.Register(string(Sass), "css", New(Sass))
}

// Register sets the renderer for files ending in ext, replacing whatever was
// there before. A leading "." on either extension is ignored.
func (r *Registry) Register(ext, output string, fn RenderFunc) {
	ext = cleanExt(ext)
	output = cleanExt(output)

	r.rwmtx.Lock()
	defer r.rwmtx.Unlock()

	_, replaced := r.renderers[ext]
	r.renderers[ext] = Entry{
		Output: output,
		Render: fn,
	}

	if replaced {
		r.log.Warnf("replaced renderer: %s -> %s", ext, output)
	} else {
		r.log.Infof("registered renderer: %s -> %s", ext, output)
	}
}

// Lookup gets the renderer for the given extension
func (r *Registry) Lookup(ext string) (Entry, bool) {
	r.rwmtx.RLock()
	defer r.rwmtx.RUnlock()

	e, ok := r.renderers[cleanExt(ext)]
	return e, ok
}

// Output gets the path that rendering path would produce. Paths with no
// renderer are returned unchanged.
func (r *Registry) Output(path string) string {
	ext := filepath.Ext(path)

	e, ok := r.Lookup(ext)
	if !ok {
		return path
	}

	return strings.TrimSuffix(path, ext) + "." + e.Output
}

// Render renders file with the renderer registered for its extension
func (r *Registry) Render(ctx *Context, file File, locals Locals) (string, error) {
	ext := filepath.Ext(file.Path)

	e, ok := r.Lookup(ext)
	if !ok {
		return "", errors.Wrapf(ErrNoRenderer, "for %q", file.Path)
	}

	return e.Render(ctx, file, locals)
}

func cleanExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
