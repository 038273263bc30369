package min

import (
	"bytes"
	"strings"

	"github.com/tdewolff/minify"
	min_css "github.com/tdewolff/minify/css"
)

const cssMime = "text/css"

var min = minify.New()

func init() {
	min.AddFunc(cssMime, min_css.Minify)
}

// CSS minifies a compiled stylesheet
func CSS(css string) (string, error) {
	var b bytes.Buffer

	err := min.Minify(cssMime, &b, strings.NewReader(css))
	if err != nil {
		return "", err
	}

	return b.String(), nil
}
