package user

import "strings"

// User is one account from the external user directory.
type User struct {
	ID       string
	Username string
	Name     string
}

// Principal identifies the authenticated caller of a request.
type Principal struct {
	UserID string
	Email  string
}

// DisplayName resolves the name shown on leaderboards: full name, then
// username, then the raw user id. Whitespace-only values count as absent.
func DisplayName(u User) string {
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	if username := strings.TrimSpace(u.Username); username != "" {
		return username
	}

	return u.ID
}
