// Package sassrender plugs the sass compiler into a site's rendering
// pipeline.
//
// New returns a RenderFunc for one of the two syntaxes. Compiler options come
// from the node_sass key of the site config or, when the site sets none, of
// the theme config. Site options replace theme options wholesale; the two
// are never merged.
package sassrender

import "fmt"

// Syntax selects the source language of a stylesheet
type Syntax string

const (
	// SCSS is the brace-and-semicolon syntax
	SCSS Syntax = "scss"

	// Sass is the indented syntax
	Sass Syntax = "sass"
)

// ParseSyntax validates a syntax name
func ParseSyntax(name string) (Syntax, error) {
	s := Syntax(name)
	if !s.valid() {
		return "", fmt.Errorf("unknown sass syntax: %q", name)
	}

	return s, nil
}

func (s Syntax) valid() bool {
	return s == SCSS || s == Sass
}
