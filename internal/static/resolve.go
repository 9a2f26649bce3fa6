package static

import (
	"path"
	"strings"
)

const indexDocument = "index.html"

// resolution is the outcome of routing a request path: either a
// canonical redirect, or an ordered list of slash-relative candidate
// files to try under the public root.
type resolution struct {
	RedirectTo string
	Candidates []string
}

// resolve routes a request path by shape alone, no filesystem access.
// The decision tree over (has extension, has trailing slash):
//
//	"/"            -> index document
//	has extension  -> the path itself
//	no ext, no "/" -> 301 to the path with a trailing slash
//	no ext, "/"    -> the directory index, then "<path>.html"
//
// The .html fallback is the pretty-URL rule: "/about/" serves
// about.html when no about/ directory exists. Cleaning through
// path.Clean confines every candidate inside the public root.
func resolve(rawPath string) resolution {
	p := path.Clean("/" + rawPath)
	if p == "/" {
		return resolution{Candidates: []string{indexDocument}}
	}

	if path.Ext(p) != "" {
		return resolution{Candidates: []string{strings.TrimPrefix(p, "/")}}
	}

	if !strings.HasSuffix(rawPath, "/") {
		return resolution{RedirectTo: p + "/"}
	}

	rel := strings.TrimPrefix(p, "/")
	return resolution{Candidates: []string{
		path.Join(rel, indexDocument),
		rel + ".html",
	}}
}
