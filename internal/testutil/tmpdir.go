package testutil

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/thatguystone/cog/check"
)

// A TmpDir holds site and theme fixtures for a test
type TmpDir struct {
	c    *check.C
	root string
}

// NewTmpDir creates a new temp directory populated with files, keyed by
// path relative to the root
func NewTmpDir(c *check.C, files map[string]string) *TmpDir {
	root, err := ioutil.TempDir("", "sassrender-test-")
	c.Must.Nil(err)

	tmp := &TmpDir{
		c:    c,
		root: root,
	}

	for path, content := range files {
		tmp.WriteFile(path, content)
	}

	return tmp
}

// Remove removes the temp dir and everything in it
func (tmp *TmpDir) Remove() {
	tmp.c.Nil(os.RemoveAll(tmp.root))
}

// Path gets the path to a file in the temp dir
func (tmp *TmpDir) Path(p string) string {
	return filepath.Join(tmp.root, filepath.Clean(p))
}

// WriteFile writes a file to the temp dir, creating parents as necessary
func (tmp *TmpDir) WriteFile(path, content string) {
	path = tmp.Path(path)

	err := os.MkdirAll(filepath.Dir(path), 0750)
	tmp.c.Must.Nil(err)

	err = ioutil.WriteFile(path, []byte(content), 0640)
	tmp.c.Must.Nil(err)
}
