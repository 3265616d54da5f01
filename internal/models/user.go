package models

import "strconv"

// UserID identifies a user account. The graph stores only identifiers
// and edges; attribute lookups belong to the layer that owns the user
// table.
type UserID int64

// ParseUserID converts a decimal path or query parameter into a UserID.
// Anything that is not a positive integer fails with ErrInvalidUserID.
func ParseUserID(s string) (UserID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, ErrInvalidUserID
	}
	return UserID(n), nil
}

// String renders the id as its decimal form.
func (id UserID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
