package protocol

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
)

func TestKePayloadCodec(t *testing.T) {
	// leading zeros in KeyData are significant fixed-width padding
	keyData := append(make([]byte, 3), 0xDE, 0xAD, 0xBE, 0xEF)
	ke := &KePayload{DhTransformId: MODP_2048, KeyData: keyData}
	b := ke.Encode()
	if len(b) != 4+len(keyData) {
		t.Fatalf("encoded length %d, want %d", len(b), 4+len(keyData))
	}
	if b[2] != 0 || b[3] != 0 {
		t.Error("reserved bytes not zero")
	}
	dec := &KePayload{}
	if err := dec.Decode(b); err != nil {
		t.Fatal(err)
	}
	if dec.DhTransformId != MODP_2048 {
		t.Errorf("group %s, want MODP_2048", dec.DhTransformId)
	}
	if !bytes.Equal(dec.KeyData, keyData) {
		t.Error("key data did not survive the round trip")
	}
}

func TestKePayloadShort(t *testing.T) {
	for _, b := range [][]byte{nil, {0}, {0, 14, 0}} {
		err := (&KePayload{}).Decode(b)
		if errors.Cause(err) != ERR_INVALID_SYNTAX {
			t.Errorf("short buffer %v: %v, want ERR_INVALID_SYNTAX", b, err)
		}
	}
}

func TestDhTransformIdNames(t *testing.T) {
	for _, id := range []DhTransformId{MODP_768, MODP_1024, MODP_1536,
		MODP_2048, MODP_3072, MODP_4096, MODP_6144, MODP_8192} {
		back, ok := DhTransformIdByName(id.String())
		if !ok || back != id {
			t.Errorf("%s does not round trip", id)
		}
	}
	if _, ok := DhTransformIdByName("MODP_512"); ok {
		t.Error("unknown name resolved")
	}
}
