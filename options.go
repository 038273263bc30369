package sassrender

// CompilerOptions picks the option layer that applies to ctx: the site's if
// it sets any, otherwise the theme's. The result is never a merge of the two.
func (ctx *Context) CompilerOptions() Options {
	if ctx == nil {
		return nil
	}

	if len(ctx.Config.NodeSass) > 0 {
		return ctx.Config.NodeSass
	}

	return ctx.Theme.Config.NodeSass
}
