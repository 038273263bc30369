package sassrender

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RenderAll renders every file with fn against rc, running up to GOMAXPROCS
// compiles at once. Results are in the same order as files. The first error
// stops the batch and is returned as-is.
func RenderAll(ctx context.Context, rc *Context, fn RenderFunc, files []File) ([]string, error) {
	out := make([]string, len(files))
	sema := make(chan struct{}, runtime.GOMAXPROCS(0))

	g, ctx := errgroup.WithContext(ctx)

	for i, file := range files {
		i, file := i, file

		g.Go(func() error {
			select {
			case sema <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
			defer func() { <-sema }()

			err := ctx.Err()
			if err != nil {
				return err
			}

			css, err := fn(rc, file, nil)
			if err != nil {
				return err
			}

			out[i] = css
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return out, nil
}
