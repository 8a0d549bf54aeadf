package userstore

import (
	"fmt"
	"strconv"
)

// User is the value object returned on successful load or creation. It is
// owned by the caller and never written back; persistence happens only
// through the Store operations.
//
// Row holds every selected non-password field keyed by column name, in the
// shape the store's configuration selected it. The password field is
// stripped before construction and never appears in Row.
type User struct {
	ID  string
	Row map[string]any
}

// Get returns the value of a selected column from the user's row.
func (u *User) Get(column string) (any, bool) {
	if u == nil || u.Row == nil {
		return nil, false
	}
	v, ok := u.Row[column]
	return v, ok
}

// GetString returns a selected column as a string.
func (u *User) GetString(column string) (string, bool) {
	v, ok := u.Get(column)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// formatID renders a scanned id value as its canonical string form. Backing
// schemas key users by serial integers, uuids or plain text; callers always
// see an opaque string.
func formatID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case []byte:
		return string(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case int32:
		return strconv.FormatInt(int64(id), 10)
	case int:
		return strconv.Itoa(id)
	default:
		return fmt.Sprintf("%v", id)
	}
}

// normalizeValue maps driver-specific scan results to plain Go values.
// Text columns arrive as []byte from several drivers.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
