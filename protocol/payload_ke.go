package protocol

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

/*
    0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |   Diffie-Hellman Group Num    |           RESERVED            |
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |                                                               |
   ~                       Key Exchange Data                       ~
   |                                                               |
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/

// KePayload is the KE payload body, less the generic payload header.
// KeyData is kept as raw bytes so the fixed-width encoding of the public
// value survives a round trip; leading zero octets are significant.
type KePayload struct {
	DhTransformId DhTransformId
	KeyData       []byte
}

func (s *KePayload) Type() PayloadType { return PayloadTypeKE }

func (s *KePayload) Encode() (b []byte) {
	b = make([]byte, 4)
	binary.BigEndian.PutUint16(b, uint16(s.DhTransformId))
	return append(b, s.KeyData...)
}

func (s *KePayload) Decode(b []byte) error {
	// Header has already been decoded
	if len(b) < 4 {
		return errors.Wrap(ERR_INVALID_SYNTAX, "KE payload too small")
	}
	s.DhTransformId = DhTransformId(binary.BigEndian.Uint16(b))
	s.KeyData = append([]byte(nil), b[4:]...)
	return nil
}
