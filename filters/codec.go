// File: filters/codec.go
// Package filters
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Codec boundary: converts wire bytes to message objects inbound and back
// outbound. The encoder/decoder pair is an opaque collaborator; the chain
// treats this filter like any other interceptor.

package filters

import (
	"github.com/momentics/hioload-chain/adapters"
	"github.com/momentics/hioload-chain/api"
)

// Encoder turns a message object into wire bytes.
type Encoder interface {
	Encode(s api.Session, message any) ([]byte, error)
}

// Decoder turns wire bytes into a message object.
type Decoder interface {
	Decode(s api.Session, data []byte) (any, error)
}

// CodecFilter bridges between []byte at the transport side and message
// objects at the handler side of its chain position.
type CodecFilter struct {
	adapters.FilterAdapter
	encoder Encoder
	decoder Decoder
}

var _ api.Filter = (*CodecFilter)(nil)

// NewCodecFilter creates a codec filter around enc and dec.
func NewCodecFilter(enc Encoder, dec Decoder) *CodecFilter {
	return &CodecFilter{encoder: enc, decoder: dec}
}

// MessageReceived decodes raw bytes and forwards the decoded message.
// Non-byte payloads fail with ErrInvalidMessage rather than pass undecoded.
func (f *CodecFilter) MessageReceived(next api.NextFilter, s api.Session, message any) error {
	data, ok := message.([]byte)
	if !ok {
		return api.ErrInvalidMessage
	}
	decoded, err := f.decoder.Decode(s, data)
	if err != nil {
		return err
	}
	return next.MessageReceived(s, decoded)
}

// FilterWrite encodes the outbound message and forwards a derived request
// sharing the original completion future.
func (f *CodecFilter) FilterWrite(next api.NextFilter, s api.Session, wr *api.WriteRequest) error {
	encoded, err := f.encoder.Encode(s, wr.Message())
	if err != nil {
		return err
	}
	return next.FilterWrite(s, wr.WithMessage(encoded))
}

func (f *CodecFilter) String() string { return "codec" }
