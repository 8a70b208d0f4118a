package app

import (
	"net/url"
	"strings"
)

// dbNameFromURL extracts the database name for span attribution. An
// unparseable DSN is not fatal here; the connection attempt will surface it.
func dbNameFromURL(dsn string) string {
	parsed, err := url.Parse(dsn)
	if err != nil {
		return ""
	}

	return strings.TrimPrefix(parsed.Path, "/")
}
