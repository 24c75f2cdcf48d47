// Package assets embeds the reader's front end so the binary serves it
// without touching the disk at request time.
package assets

import (
	"embed"
)

//go:embed static
var files embed.FS

type asset struct {
	file        string
	contentType string
}

const (
	jsType   = "application/javascript; charset=utf-8"
	htmlType = "text/html; charset=utf-8"
)

var catalog = map[string]asset{
	"styles.css":  {"static/styles.css", "text/css; charset=utf-8"},
	"app.js":      {"static/app.js", jsType},
	"layout.js":   {"static/layout.js", jsType},
	"layout.html": {"static/layout.html", htmlType},
	"i18n.js":     {"static/i18n.js", jsType},
	"dom.js":      {"static/dom.js", jsType},
}

// Lookup returns the body and content type of the asset with exactly this
// name.
func Lookup(name string) ([]byte, string, bool) {
	a, ok := catalog[name]
	if !ok {
		return nil, "", false
	}
	body, err := files.ReadFile(a.file)
	if err != nil {
		return nil, "", false
	}
	return body, a.contentType, true
}

// Index returns the page shell.
func Index() []byte {
	body, _ := files.ReadFile("static/index.html")
	return body
}

func IndexContentType() string {
	return htmlType
}
