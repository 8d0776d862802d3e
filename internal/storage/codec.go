package storage

import (
	"encoding/json"
	"fmt"

	"recipebox/internal/common"
)

// Encode serializes a record slice to its stored JSON form. A nil slice is
// encoded as the empty array so that decode(encode(xs)) == xs holds for the
// empty sequence too.
func Encode[T any](records []T) (string, error) {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode records: %w", err)
	}
	return string(data), nil
}

// Decode parses a stored value back into a record slice. The empty string
// (an absent key) decodes to the empty slice; anything else that is not a
// valid array of the expected shape fails with common.ErrMalformedData.
func Decode[T any](text string) ([]T, error) {
	if text == "" {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedData, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// DecodeLenient is the permissive-read variant used on list paths: absent or
// malformed data is substituted with the empty collection instead of
// surfacing an error. Mutating paths use the strict Decode so a broken
// collection is never silently overwritten.
func DecodeLenient[T any](text string) []T {
	records, err := Decode[T](text)
	if err != nil {
		return []T{}
	}
	return records
}

// EncodeObject serializes a single record, used for the session and
// preferences keys which hold one JSON object rather than an array.
func EncodeObject[T any](v T) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode object: %w", err)
	}
	return string(data), nil
}

// DecodeObject parses a single stored record. It fails with
// common.ErrMalformedData when the value cannot be decoded.
func DecodeObject[T any](text string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return v, fmt.Errorf("%w: %v", common.ErrMalformedData, err)
	}
	return v, nil
}
