package files

import (
	"regexp"
	"strings"
)

// DefaultDavService matches the known WebDAV endpoint segments inside a
// source URL: remote.php/dav, remote.php/webdav, public.php/dav and
// public.php/webdav, case-insensitively. Constructors accept a custom
// pattern for non-standard deployments.
var DefaultDavService = regexp.MustCompile(`(?i)(remote|public)\.php/(web)?dav`)

// afterDavService returns the part of s following the last match of the
// service pattern, or s unchanged when the pattern does not match. Taking
// the last occurrence keeps root detection stable even when a user directory
// happens to contain the service token itself.
func afterDavService(s string, service *regexp.Regexp) string {
	parts := service.Split(s, -1)
	return parts[len(parts)-1]
}

// urlDirname strips the last path segment of a raw URL string without
// normalizing it (path.Dir would collapse the "//" of the scheme). The
// scheme separator is skipped, so a path-less URL comes back unchanged.
func urlDirname(s string) string {
	start := 0
	if i := strings.Index(s, "://"); i >= 0 {
		start = i + 3
	}
	if i := strings.LastIndex(s[start:], "/"); i > 0 {
		return s[:start+i]
	}
	return s
}
