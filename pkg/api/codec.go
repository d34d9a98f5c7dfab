// Package api defines the drinkorder.v1 wire messages.
//
// Messages are plain Go structs encoded as JSON, so the same types serve the
// browser frontend and Go clients built from package apiconnect.
package api

import (
	"encoding/json"
	"fmt"
)

// Codec is the Connect codec for api messages. It takes the place of the
// protojson codec under the "json" name.
type Codec struct{}

// Name implements connect.Codec.
func (Codec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (Codec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %T: %w", msg, err)
	}
	return data, nil
}

// Unmarshal implements connect.Codec. An empty body decodes to the zero message.
func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("failed to unmarshal %T: %w", msg, err)
	}
	return nil
}
