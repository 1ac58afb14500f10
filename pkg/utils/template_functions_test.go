package utils

import (
	"bytes"
	"testing"
	"testing/fstest"
	"time"
)

func TestPathEquals(t *testing.T) {
	tests := []struct {
		current string
		target  string
		want    bool
	}{
		{current: "/over-ons", target: "/over-ons", want: true},
		{current: "/over-ons/", target: "https://aivanta.be/over-ons", want: true},
		{current: "/", target: "/", want: true},
		{current: "/", target: "#werkwijze", want: false},
		{current: "/", target: "/#werkwijze", want: false},
		{current: "/over-ons", target: "", want: false},
		{current: "/diensten/leadgeneratie", target: "/diensten", want: false},
	}

	for _, tt := range tests {
		if got := pathEquals(tt.current, tt.target); got != tt.want {
			t.Errorf("pathEquals(%q, %q) = %v, want %v", tt.current, tt.target, got, tt.want)
		}
	}
}

func TestTemplateFuncsAreMinimal(t *testing.T) {
	funcs := TemplateFuncs(nil)
	if len(funcs) != 3 {
		t.Fatalf("expected asset, pathEquals and year, got %d helpers", len(funcs))
	}
	if _, ok := funcs["eq"]; ok {
		t.Fatalf("the built-in eq must not be overridden")
	}
}

func TestAssetFuncAddsVersion(t *testing.T) {
	stamp := time.Unix(1700000000, 0)
	funcs := TemplateFuncs(func(string) (time.Time, error) { return stamp, nil })
	asset := funcs["asset"].(func(string) string)

	if got := asset("/static/css/site.css"); got != "/static/css/site.css?v=1700000000" {
		t.Fatalf("unexpected versioned asset %q", got)
	}
	if got := asset("https://code.iconify.design/iconify.min.js"); got != "https://code.iconify.design/iconify.min.js" {
		t.Fatalf("external assets must be left alone, got %q", got)
	}

	unversioned := TemplateFuncs(nil)["asset"].(func(string) string)
	if got := unversioned("/static/js/accordion.js"); got != "/static/js/accordion.js" {
		t.Fatalf("expected path unchanged without mod time, got %q", got)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"":                            "/",
		"over-ons":                    "/over-ons",
		"/diensten//leadgeneratie/":   "/diensten/leadgeneratie",
		"https://aivanta.be/over-ons": "/over-ons",
	}
	for input, expected := range cases {
		if got := NormalizePath(input); got != expected {
			t.Errorf("NormalizePath(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestLoadTemplatesFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/base.html":  {Data: []byte(`{{define "base.html"}}<main>{{template "inner" .}}</main>{{end}}`)},
		"templates/inner.html": {Data: []byte(`{{define "inner"}}{{.}}{{end}}`)},
	}

	tmpl, err := LoadTemplates(fsys, "templates", nil)
	if err != nil {
		t.Fatalf("LoadTemplates returned error: %v", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", "hallo"); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if buf.String() != "<main>hallo</main>" {
		t.Fatalf("unexpected output %q", buf.String())
	}

	if _, err := LoadTemplates(fstest.MapFS{}, "templates", nil); err == nil {
		t.Fatalf("expected error for empty template dir")
	}
}
