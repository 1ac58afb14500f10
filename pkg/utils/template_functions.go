package utils

import (
	"html/template"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"
)

// AssetModTimeFunc reports the version stamp of a static asset.
type AssetModTimeFunc func(path string) (time.Time, error)

// TemplateFuncs is the helper set available to the layout templates.
func TemplateFuncs(assetModTime AssetModTimeFunc) template.FuncMap {
	return template.FuncMap{
		"asset":      assetURL(assetModTime),
		"pathEquals": pathEquals,
		"year":       func() int { return time.Now().Year() },
	}
}

// assetURL appends ?v=<unix> to local asset paths so browsers refetch them
// after a deploy. External and protocol-relative URLs pass through.
func assetURL(modTime AssetModTimeFunc) func(string) string {
	return func(p string) string {
		if p == "" || isAbsoluteURL(p) || modTime == nil {
			return p
		}
		stamp, err := modTime(p)
		if err != nil || stamp.Unix() <= 0 {
			return p
		}
		sep := "?"
		if strings.Contains(p, "?") {
			sep = "&"
		}
		return p + sep + "v=" + strconv.FormatInt(stamp.Unix(), 10)
	}
}

// pathEquals reports whether a nav target points at the current page.
// Fragment-only and empty targets never match.
func pathEquals(current, target string) bool {
	target = strings.TrimSpace(target)
	if target == "" || strings.HasPrefix(target, "#") {
		return false
	}
	return NormalizePath(current) == NormalizePath(target)
}

// NormalizePath reduces a path or absolute URL to a clean rooted path
// without a trailing slash.
func NormalizePath(value string) string {
	p := strings.TrimSpace(value)
	if isAbsoluteURL(p) {
		if u, err := url.Parse(p); err == nil {
			p = u.Path
		}
	}
	if p == "" {
		return "/"
	}
	return path.Clean("/" + p)
}

func isAbsoluteURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(s, "//")
}
