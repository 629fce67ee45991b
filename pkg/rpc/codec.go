// Package rpc defines the billsplit.v1 GroupService wire contract: message
// types, procedure names, and Connect handler/client constructors.
//
// Messages are plain Go structs carried by a JSON codec, so the service speaks
// the Connect protocol with Content-Type application/json. Amounts cross the
// wire as decimal strings in major units ("12.34").
package rpc

import "encoding/json"

// JSONCodec is a connect.Codec for plain structs using encoding/json.
// It is registered under the name "json", replacing Connect's protojson codec.
type JSONCodec struct{}

// Name implements connect.Codec.
func (JSONCodec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// Unmarshal implements connect.Codec. An empty body decodes to the zero message.
func (JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
