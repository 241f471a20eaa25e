// Package urlcheck validates and normalizes original URLs, uids and path prefixes,
// and decides whether a stored target is safe to redirect to.
package urlcheck

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/vadimbarashkov/shortlink/internal/entity"
)

var (
	uidRe    = regexp.MustCompile(`^/[A-Za-z0-9_-]+(/[A-Za-z0-9_-]+)?$`)
	prefixRe = regexp.MustCompile(`^[A-Za-z0-9_-]{3,50}$`)
)

// ProtectedPrefixes are the management API roots that are never treated as uids.
var ProtectedPrefixes = []string{
	"/url_bindings",
	"/users",
	"/subscriptions",
	"/statistics",
	"/ping",
}

var (
	blockedHosts     = []string{"localhost", "127.0.0.1"}
	internalPrefixes = []string{"10.", "192.168.", "172.16."}
)

// NormalizeURL trims surrounding whitespace.
func NormalizeURL(raw string) string {
	return strings.TrimSpace(raw)
}

// ValidateURL checks that raw is an absolute http or https URL with a host.
func ValidateURL(raw string) error {
	const op = "urlcheck.ValidateURL"

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", op, entity.ErrInvalidURL)
	}
	if !isHTTPScheme(u.Scheme) || u.Host == "" {
		return fmt.Errorf("%s: %w", op, entity.ErrInvalidURL)
	}

	return nil
}

// IsSafeRedirect reports whether raw may be used as a redirect target.
// Private networks are detected by plain string prefixes of the host.
func IsSafeRedirect(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if !isHTTPScheme(u.Scheme) {
		return false
	}

	host := u.Hostname()
	if host == "" {
		return false
	}

	for _, h := range blockedHosts {
		if host == h {
			return false
		}
	}

	for _, p := range internalPrefixes {
		if strings.HasPrefix(host, p) {
			return false
		}
	}

	return true
}

// NormalizeUID trims whitespace and makes sure the uid starts with a slash.
func NormalizeUID(raw string) string {
	uid := strings.TrimSpace(raw)
	if !strings.HasPrefix(uid, "/") {
		uid = "/" + uid
	}
	return uid
}

// IsValidUID reports whether uid has the form "/suffix" or "/prefix/suffix".
func IsValidUID(uid string) bool {
	return uidRe.MatchString(uid)
}

// IsProtectedPath reports whether path is, or lives under, one of the ProtectedPrefixes.
func IsProtectedPath(path string) bool {
	for _, p := range ProtectedPrefixes {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// NormalizePrefix trims a path prefix and checks its grammar. Prefixes that
// collide with ProtectedPrefixes are rejected too, since their uids could never resolve.
func NormalizePrefix(raw string) (string, error) {
	const op = "urlcheck.NormalizePrefix"

	prefix := strings.TrimSpace(raw)
	if !prefixRe.MatchString(prefix) {
		return "", fmt.Errorf("%s: %w", op, entity.ErrInvalidFormat)
	}
	if IsProtectedPath("/" + prefix) {
		return "", fmt.Errorf("%s: reserved path prefix: %w", op, entity.ErrInvalidFormat)
	}

	return prefix, nil
}

func isHTTPScheme(scheme string) bool {
	return strings.EqualFold(scheme, "http") || strings.EqualFold(scheme, "https")
}
