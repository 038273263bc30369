package sassrender

import (
	"testing"

	"github.com/thatguystone/cog/check"
	"github.com/thatguystone/sassrender/internal/testutil"
)

func TestLoadContext(t *testing.T) {
	c := check.New(t)

	tmp := testutil.NewTmpDir(c, map[string]string{
		"_config.yml":             "title: Blog\ntheme: land\n",
		"themes/land/_config.yml": "node_sass:\n  outputStyle: compressed\n",
	})
	defer tmp.Remove()

	ctx, err := LoadContext(tmp.Path(""))
	c.Must.Nil(err)

	c.Equal(ctx.Config.Title, "Blog")
	c.Equal(ctx.Config.Theme, "land")
	c.Equal(len(ctx.Config.NodeSass), 0)
	c.Equal(ctx.Theme.Config.NodeSass, compressed)

	css, err := New(SCSS)(ctx, File{Text: scssBody}, nil)
	c.Must.Nil(err)
	c.Equal(css, ".foo{color:red}")
}

func TestLoadContextSiteWins(t *testing.T) {
	c := check.New(t)

	tmp := testutil.NewTmpDir(c, map[string]string{
		"_config.yml":             "theme: land\nnode_sass:\n  outputStyle: compressed\n",
		"themes/land/_config.yml": "node_sass:\n  outputStyle: nested\n",
	})
	defer tmp.Remove()

	ctx, err := LoadContext(tmp.Path(""))
	c.Must.Nil(err)

	css, err := New(SCSS)(ctx, File{Text: scssBody}, nil)
	c.Must.Nil(err)
	c.Equal(css, ".foo{color:red}")
}

func TestLoadContextMissingTheme(t *testing.T) {
	c := check.New(t)

	tmp := testutil.NewTmpDir(c, map[string]string{
		"_config.yml": "theme: gone\n",
	})
	defer tmp.Remove()

	ctx, err := LoadContext(tmp.Path(""))
	c.Must.Nil(err)
	c.Equal(ctx.Theme, Theme{})
}

func TestLoadContextErrors(t *testing.T) {
	c := check.New(t)

	tmp := testutil.NewTmpDir(c, map[string]string{
		"bad/_config.yml":               "theme: land\n",
		"bad/themes/land/_config.yml":   "node_sass: [",
		"badsite/_config.yml":           "title: [",
		"empty/themes/land/_config.yml": "",
	})
	defer tmp.Remove()

	_, err := LoadContext(tmp.Path("empty"))
	c.NotNil(err)

	_, err = LoadContext(tmp.Path("badsite"))
	c.NotNil(err)

	_, err = LoadContext(tmp.Path("bad"))
	c.NotNil(err)
}
