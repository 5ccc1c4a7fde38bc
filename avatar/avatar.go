// Package avatar derives display-avatar URLs from email addresses using the
// Gravatar scheme. The derivation is deterministic: the same email always
// yields the same URL, so the value is computed at registration and stored
// with the account rather than recomputed per request.
package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strings"
)

const baseURL = "https://www.gravatar.com/avatar/"

// Display policy constants. These are not user-supplied.
const (
	// defaultSize is the requested image size in pixels.
	defaultSize = "200"
	// defaultRating caps the image rating.
	defaultRating = "pg"
	// defaultImage selects the fallback icon for emails without a gravatar.
	defaultImage = "mm"
)

// URL returns the gravatar URL for the given email address. The email is
// trimmed and lowercased before hashing, per the Gravatar specification.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))

	params := url.Values{}
	params.Set("s", defaultSize)
	params.Set("r", defaultRating)
	params.Set("d", defaultImage)

	return fmt.Sprintf("%s%s?%s", baseURL, hex.EncodeToString(sum[:]), params.Encode())
}
