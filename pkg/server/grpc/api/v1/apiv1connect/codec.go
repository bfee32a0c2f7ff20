package apiv1connect

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

const codecName = "json"

// Codec encodes the plain message structs of the API as JSON. Well-known protobuf
// types such as emptypb.Empty and the wrapperspb values use their canonical protojson
// form.
type Codec struct{}

func (Codec) Name() string {
	return codecName
}

func (Codec) Marshal(message any) ([]byte, error) {
	if protoMessage, ok := message.(proto.Message); ok {
		return protojson.Marshal(protoMessage)
	}

	return json.Marshal(message)
}

func (Codec) Unmarshal(data []byte, message any) error {
	if protoMessage, ok := message.(proto.Message); ok {
		return protojson.UnmarshalOptions{DiscardUnknown: true}.Unmarshal(data, protoMessage)
	}

	return json.Unmarshal(data, message)
}
