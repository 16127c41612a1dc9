// Package endpoint resolves the per-resource URL templates used by the
// CardSecure and Gateway APIs.
package endpoint

import "strings"

// Resolve joins a base URL template with an optional relative suffix
// and substitutes the {site} and {merchid} placeholders afterwards, so
// suffixes may themselves carry placeholders.
//
// A suffix beginning with "?" or "#" attaches to the base unmodified.
// Any other suffix is appended as path segments: the base path is
// normalized to exactly one trailing slash and the suffix's leading
// slash is stripped, which prevents a naive URL join from replacing
// the last base path segment.
//
// Examples:
//
//	"https://httpbin.org/get" + "file"   => "https://httpbin.org/get/file"
//	"https://httpbin.org/get" + "/file"  => "https://httpbin.org/get/file"
//	"https://httpbin.org/get/" + "file"  => "https://httpbin.org/get/file"
//	"https://httpbin.org/get/" + "/file" => "https://httpbin.org/get/file"
func Resolve(base, path, site, merchid string) string {
	var resolved string
	switch {
	case path == "":
		resolved = base
	case path[0] == '?' || path[0] == '#':
		resolved = base + path
	default:
		resolved = strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
	}

	return strings.NewReplacer(
		"{site}", site,
		"{merchid}", merchid,
	).Replace(resolved)
}
