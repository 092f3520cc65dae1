package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns an event payload as T.
// Payloads published in-process arrive as T or *T; anything else (for example
// a map from a decoded JSON envelope) is converted through a JSON round trip.
func DecodePayload[T any](payload any) (T, error) {
	switch v := payload.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
	}

	var out T
	if payload == nil {
		return out, fmt.Errorf("event payload is nil, want %T", out)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return out, fmt.Errorf("failed to encode payload %T: %w", payload, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("failed to decode payload into %T: %w", out, err)
	}
	return out, nil
}
