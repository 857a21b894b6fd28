// Package codec holds the JSON encode/decode helpers shared by the clients.
package codec

import (
	"encoding/json"
)

// Encode serializes v to a JSON string.
func Encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Decode deserializes a JSON string into a value of type T.
func Decode[T any](s string) (T, error) {
	var v T
	err := json.Unmarshal([]byte(s), &v)
	return v, err
}

// DecodeBytes is Decode for a byte slice, as returned by a buffered response body.
func DecodeBytes[T any](b []byte) (T, error) {
	var v T
	err := json.Unmarshal(b, &v)
	return v, err
}
