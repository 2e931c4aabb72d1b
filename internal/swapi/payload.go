package swapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// page is the paginated envelope the API wraps every list response in.
type page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// decodePayload accepts either a page envelope or a bare JSON array and
// returns the records plus the next page URL, if any.
func decodePayload[T any](dec *json.Decoder) ([]T, string, error) {
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, "", err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, "", errors.New("empty payload")
	}

	switch trimmed[0] {
	case '[':
		var records []T
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, "", err
		}
		return records, "", nil
	case '{':
		var envelope page[T]
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, "", err
		}
		if envelope.Results == nil {
			return nil, "", errors.New("page has no results array")
		}
		next := ""
		if envelope.Next != nil {
			next = *envelope.Next
		}
		return envelope.Results, next, nil
	default:
		return nil, "", fmt.Errorf("unexpected payload starting with %q", trimmed[0])
	}
}
