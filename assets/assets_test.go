package assets

import (
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name        string
		wantType    string
		wantContent string
	}{
		{"styles.css", "text/css; charset=utf-8", "--img-width"},
		{"app.js", "application/javascript; charset=utf-8", "/api/images"},
		{"layout.js", "application/javascript; charset=utf-8", "/assets/layout.html"},
		{"layout.html", "text/html; charset=utf-8", `id="grid"`},
		{"i18n.js", "application/javascript; charset=utf-8", "export const i18n"},
		{"dom.js", "application/javascript; charset=utf-8", "initDomRefs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ct, ok := Lookup(tt.name)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.name)
			}
			if ct != tt.wantType {
				t.Errorf("content type = %q, want %q", ct, tt.wantType)
			}
			if !strings.Contains(string(body), tt.wantContent) {
				t.Errorf("%s does not contain %q", tt.name, tt.wantContent)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, name := range []string{"", "index.html", "APP.JS", "static/app.js", "../assets.go"} {
		if _, _, ok := Lookup(name); ok {
			t.Errorf("Lookup(%q) should not be found", name)
		}
	}
}

func TestIndex(t *testing.T) {
	if !strings.Contains(string(Index()), "/assets/layout.js") {
		t.Error("page shell should load layout.js")
	}
}
