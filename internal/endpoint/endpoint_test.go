package endpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveJoinsSegmentsRegardlessOfSlashes(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
	}{
		{name: "no slashes", base: "https://httpbin.org/get", path: "file"},
		{name: "leading slash on path", base: "https://httpbin.org/get", path: "/file"},
		{name: "trailing slash on base", base: "https://httpbin.org/get/", path: "file"},
		{name: "both slashes", base: "https://httpbin.org/get/", path: "/file"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resolved := Resolve(tc.base, tc.path, "fts-uat", "496160873888")
			assert.Equal(t, "https://httpbin.org/get/file", resolved)
		})
	}
}

func TestResolveEmptyPathReturnsBase(t *testing.T) {
	resolved := Resolve("https://fts-uat.cardconnect.com/cardconnect/rest/auth", "", "fts-uat", "496160873888")
	assert.Equal(t, "https://fts-uat.cardconnect.com/cardconnect/rest/auth", resolved)
}

func TestResolveQueryAndFragmentAttachToBase(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		path     string
		expected string
	}{
		{
			name:     "query suffix",
			base:     "https://httpbin.org/funding",
			path:     "?merchid=1&date=20221024",
			expected: "https://httpbin.org/funding?merchid=1&date=20221024",
		},
		{
			name:     "fragment suffix",
			base:     "https://httpbin.org/get",
			path:     "#anchor",
			expected: "https://httpbin.org/get#anchor",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Resolve(tc.base, tc.path, "fts-uat", "496160873888"))
		})
	}
}

func TestResolveSubstitutesPlaceholdersAfterJoining(t *testing.T) {
	resolved := Resolve(
		"https://{site}.cardconnect.com/cardconnect/rest/inquire",
		"296562170203/{merchid}",
		"fts-uat",
		"496160873888",
	)
	assert.Equal(t, "https://fts-uat.cardconnect.com/cardconnect/rest/inquire/296562170203/496160873888", resolved)
}

func TestResolveSubstitutesPlaceholderInQuery(t *testing.T) {
	resolved := Resolve(
		"https://{site}.cardconnect.com/cardconnect/rest/funding",
		"?merchid={merchid}",
		"fts-uat",
		"496160873888",
	)
	assert.Equal(t, "https://fts-uat.cardconnect.com/cardconnect/rest/funding?merchid=496160873888", resolved)
}
