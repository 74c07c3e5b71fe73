package media

import "strings"

// NormalizeURL turns a stored media URL into an absolute, directly renderable
// one. Absolute inputs pass through untouched apart from the cache-buster.
// Relative inputs are prefixed with the media base; when the base ends in the
// same path segment the input starts with, the segment is not repeated.
// Pure string work, no I/O.
func NormalizeURL(base, raw, version string) string {
	if raw == "" {
		return ""
	}

	url := raw
	if !hasScheme(raw) {
		url = joinBase(base, raw)
	}
	return withCacheBuster(url, version)
}

func hasScheme(url string) bool {
	for i := 0; i < len(url); i++ {
		c := url[i]
		if c == ':' {
			return i > 0 && strings.HasPrefix(url[i:], "://")
		}
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.') {
			return false
		}
	}
	return false
}

func joinBase(base, path string) string {
	base = strings.TrimRight(base, "/")
	path = strings.TrimLeft(path, "/")

	// Drop the duplicated segment when base ends where the path begins,
	// e.g. base ".../media" + path "media/x.jpg".
	if idx := strings.IndexByte(path, '/'); idx > 0 {
		first := path[:idx]
		if strings.HasSuffix(base, "/"+first) || base == first {
			path = path[idx+1:]
		}
	}

	if base == "" {
		return "/" + path
	}
	return base + "/" + path
}

func withCacheBuster(url, version string) string {
	if version == "" {
		return url
	}
	sep := "?"
	if strings.ContainsRune(url, '?') {
		sep = "&"
	}
	return url + sep + "v=" + version
}
