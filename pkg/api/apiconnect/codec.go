// Package apiconnect wires the rental.v1 services to connect handlers and
// clients.
package apiconnect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// jsonCodec serializes plain Go messages with encoding/json. It registers
// under connect's "json" name, so requests use application/json.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) { return json.Marshal(msg) }

func (jsonCodec) Unmarshal(data []byte, msg any) error { return json.Unmarshal(data, msg) }

// WithJSON selects the JSON codec. Handlers and clients built by this package
// apply it already.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
