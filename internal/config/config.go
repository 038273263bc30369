package config

import (
	"io/ioutil"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// File is the name of both site and theme config files
const File = "_config.yml"

// C stands for "config". It holds the parts of a site or theme config that
// rendering cares about.
type C struct {
	// Site title
	Title string `yaml:"title"`

	// Name of the active theme, found under ThemesDir
	Theme string `yaml:"theme"`

	// Compiler options, handed as-is to the sass renderer
	NodeSass map[string]interface{} `yaml:"node_sass"`
}

// ThemesDir is where themes live, relative to the site root
const ThemesDir = "themes"

// Load reads each file in order. A key set in a later file replaces the
// same key from an earlier one; nothing is merged below the top level.
func Load(files ...string) (*C, error) {
	c := &C{}

	for _, file := range files {
		b, err := ioutil.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}

		var next C
		err = yaml.Unmarshal(b, &next)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal config file %s", file)
		}

		c.overlay(next)
	}

	return c, nil
}

func (c *C) overlay(o C) {
	if o.Title != "" {
		c.Title = o.Title
	}

	if o.Theme != "" {
		c.Theme = o.Theme
	}

	if o.NodeSass != nil {
		c.NodeSass = o.NodeSass
	}
}

// SitePath gets the path of the site config under root
func SitePath(root string) string {
	return filepath.Join(root, File)
}

// ThemePath gets the path of the config for the given theme under root
func ThemePath(root, theme string) string {
	return filepath.Join(root, ThemesDir, theme, File)
}
