package service

import (
	"fmt"
	"strconv"
	"strings"
)

// Tokens are plaintext resource identifiers ("admin-3", "user-12") that the
// storefront frontend echoes back verbatim. They carry no secret: every use
// is resolved against the live admin record, so a removed or unapproved
// admin loses access immediately.

const adminTokenPrefix = "admin-"

func AdminToken(id int) string { return fmt.Sprintf("admin-%d", id) }
func UserToken(id int) string  { return fmt.Sprintf("user-%d", id) }

// ParseAdminToken extracts the admin id from an Authorization header value.
// Both "Bearer admin-<id>" and a bare "admin-<id>" are accepted. Absent,
// malformed or non-numeric input is a non-match, not an error.
func ParseAdminToken(header string) (int, bool) {
	token := strings.TrimSpace(header)
	if len(token) >= 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	rest, found := strings.CutPrefix(token, adminTokenPrefix)
	if !found {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return id, true
}
