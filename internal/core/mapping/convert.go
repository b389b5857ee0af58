package mapping

import (
	"fmt"

	"github.com/google/uuid"
)

// StringFunc lifts a string transform (trim, sanitize) into a Callback,
// rejecting non-string values.
func StringFunc(fn func(string) string) Callback {
	return func(v interface{}) (interface{}, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("must be a string")
		}
		return fn(s), nil
	}
}

// AsString asserts a payload value into a string.
func AsString(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("must be a string")
	}
	return s, nil
}

// AsUUID parses a payload value into a UUID.
func AsUUID(v interface{}) (uuid.UUID, error) {
	s, err := AsString(v)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("must be a valid uuid")
	}
	return id, nil
}

// AsUUIDSlice parses a payload value (JSON array of strings) into UUIDs.
func AsUUIDSlice(v interface{}) ([]uuid.UUID, error) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("must be a list of uuids")
	}
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		id, err := AsUUID(item)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
