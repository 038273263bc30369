package sassrender

import (
	"os"

	"github.com/thatguystone/sassrender/internal/config"
)

// Options maps compiler option names (outputStyle, precision, etc) to values
type Options map[string]interface{}

// Config is the part of a site or theme config that rendering reads
type Config struct {
	Title    string
	Theme    string
	NodeSass Options
}

// Theme holds the active theme's config
type Theme struct {
	Config Config
}

// A Context is what every render is run against
type Context struct {
	Config Config // Site-wide settings
	Theme  Theme
}

// File is a stylesheet to render
type File struct {
	Path string // Only used to pick a renderer from a Registry
	Text string
}

// Locals are the per-render values a pipeline hands to every renderer
type Locals map[string]interface{}

// LoadContext loads the site config under root and, if it names a theme,
// that theme's config. A theme without a config gets an empty one.
func LoadContext(root string) (*Context, error) {
	site, err := config.Load(config.SitePath(root))
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		Config: fromConfig(site),
	}

	if site.Theme == "" {
		return ctx, nil
	}

	path := config.ThemePath(root, site.Theme)
	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		return ctx, nil
	}

	theme, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	ctx.Theme.Config = fromConfig(theme)

	return ctx, nil
}

func fromConfig(c *config.C) Config {
	return Config{
		Title:    c.Title,
		Theme:    c.Theme,
		NodeSass: Options(c.NodeSass),
	}
}
