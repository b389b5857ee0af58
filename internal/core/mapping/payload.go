package mapping

import (
	"encoding/json"
	"reflect"
	"strings"
)

// Payload is the decoded request body: a string-keyed map of raw values.
type Payload map[string]interface{}

// Decode turns a raw request body into a Payload. Accepted inputs are a JSON
// object (string, []byte or json.RawMessage) or an already-decoded
// map[string]interface{}. Anything else — including a JSON array, an empty
// object, or a blank string — is rejected outright, independent of the field
// map.
func Decode(raw interface{}) (Payload, error) {
	switch v := raw.(type) {
	case nil:
		return nil, &InvalidPayloadError{Reason: "payload is empty"}

	case Payload:
		return decodeMap(map[string]interface{}(v))

	case map[string]interface{}:
		return decodeMap(v)

	case string:
		return decodeJSON([]byte(v))

	case []byte:
		return decodeJSON(v)

	case json.RawMessage:
		return decodeJSON(v)

	default:
		return nil, &InvalidPayloadError{Reason: "payload must be a JSON object or string-keyed map"}
	}
}

func decodeMap(m map[string]interface{}) (Payload, error) {
	if len(m) == 0 {
		return nil, &InvalidPayloadError{Reason: "payload is empty"}
	}
	return Payload(m), nil
}

func decodeJSON(data []byte) (Payload, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, &InvalidPayloadError{Reason: "payload is empty"}
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		// A JSON array, scalar or malformed document lands here: only a
		// string-keyed object is a valid payload.
		return nil, &InvalidPayloadError{Reason: "payload must be a JSON object"}
	}

	return decodeMap(m)
}

// IsBlank implements the update no-op gate: empty strings, empty collections
// and zero-field values are blank; booleans and numbers never are.
func IsBlank(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Struct:
		return rv.NumField() == 0
	case reflect.Ptr:
		if rv.IsNil() {
			return true
		}
		return IsBlank(rv.Elem().Interface())
	}

	return false
}
