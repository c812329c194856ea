package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// The entry ID never contains the separator (IDs are UUIDs), so a plain
// split is unambiguous.
const fieldSeparator = "|"

// EncodeToken creates an opaque cursor from the creation time and ID of the
// last entry on a page. The ID breaks ties between entries that share a
// creation timestamp.
func EncodeToken(createdAt time.Time, entryID string) string {
	raw := createdAt.Format(timeFormat) + fieldSeparator + entryID
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// DecodeToken parses a cursor back into the position it carries.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	timePart, entryID, found := strings.Cut(string(decodedBytes), fieldSeparator)
	if !found {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (missing separator)")
	}

	createdAt, err := time.Parse(timeFormat, timePart)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (time parse): %w", err)
	}

	return createdAt, entryID, nil
}
