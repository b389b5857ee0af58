package utils

import (
	"github.com/google/uuid"
)

// ParseStringToUUID parses s, returning uuid.Nil on any failure.
func ParseStringToUUID(s string) uuid.UUID {
	uid, err := uuid.Parse(s)
	if err != nil || s == "" {
		return uuid.Nil
	}
	return uid
}

// ClampPagination normalizes limit/offset query values.
func ClampPagination(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
