package utils

import (
	"strings"
)

// EmailLocalPart returns the text before the '@', used as the default
// display name for lazily created users. Returns the input unchanged when
// there is no '@'.
func EmailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
