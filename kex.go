package ike

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/modpsec/ike/crypto"
	"github.com/modpsec/ike/protocol"
)

var (
	ErrorPeerValueSet   = errors.New("IKE: peer public value already set")
	ErrorNoSharedSecret = errors.New("IKE: shared secret not computed")
)

// KeyExchange holds the ephemeral state of one Diffie-Hellman exchange,
// created per IKE_SA negotiation and per rekey. It is owned by a single
// negotiation; the owner serializes calls on it.
//
// The private exponent is drawn once at creation and never leaves the
// struct. The local public value is computed on first use and cached. The
// peer value is accepted exactly once; accepting it computes the shared
// secret.
type KeyExchange struct {
	group      *crypto.DhGroup
	private    *big.Int
	public     *big.Int // computed on first request
	peerPublic *big.Int
	secret     *big.Int
}

func NewKeyExchange(id protocol.DhTransformId, randSource io.Reader) (*KeyExchange, error) {
	group, err := crypto.GroupById(id)
	if err != nil {
		return nil, err
	}
	private, err := group.Private(randSource)
	if err != nil {
		return nil, err
	}
	return &KeyExchange{
		group:   group,
		private: private,
	}, nil
}

func (x *KeyExchange) TransformId() protocol.DhTransformId {
	return x.group.TransformId()
}

// PublicValue returns g^private mod p as a fixed-width byte string of
// exactly the group's modulus length. Repeated calls return identical
// bytes; there is no re-randomization.
func (x *KeyExchange) PublicValue() []byte {
	if x.public == nil {
		x.public = x.group.Public(x.private)
	}
	return x.group.Bytes(x.public)
}

// SetPeerPublicValue accepts the peer's public value from the received
// message and computes the shared secret. A second call fails with
// ErrorPeerValueSet regardless of input; a duplicate or replayed KE payload
// never replaces the first contribution.
func (x *KeyExchange) SetPeerPublicValue(b []byte) error {
	if x.peerPublic != nil {
		return errors.Wrap(ErrorPeerValueSet, x.group.String())
	}
	if len(b) == 0 {
		return errors.Wrap(crypto.ErrorInvalidPublicValue, "empty KE data")
	}
	theirPublic := new(big.Int).SetBytes(b)
	secret, err := x.group.DiffieHellman(theirPublic, x.private)
	if err != nil {
		return err
	}
	x.peerPublic = theirPublic
	x.secret = secret
	return nil
}

// PeerPublicValue returns the previously accepted peer value, re-encoded to
// the group's fixed width. For diagnostics mostly.
func (x *KeyExchange) PeerPublicValue() ([]byte, error) {
	if x.secret == nil {
		return nil, errors.Wrap(ErrorNoSharedSecret, x.group.String())
	}
	return x.group.Bytes(x.peerPublic), nil
}

// SharedSecret returns g^(ab) mod p at the group's fixed width. Downstream
// key derivation consumes this directly, so the caller must not hold onto
// the slice longer than needed.
func (x *KeyExchange) SharedSecret() ([]byte, error) {
	if x.secret == nil {
		return nil, errors.Wrap(ErrorNoSharedSecret, x.group.String())
	}
	return x.group.Bytes(x.secret), nil
}

// KePayload wraps the local public value for an outgoing message.
func (x *KeyExchange) KePayload() *protocol.KePayload {
	return &protocol.KePayload{
		DhTransformId: x.group.TransformId(),
		KeyData:       x.PublicValue(),
	}
}

// SetKePayload accepts the peer's KE payload, checking that the peer used
// the negotiated group.
func (x *KeyExchange) SetKePayload(ke *protocol.KePayload) error {
	if ke.DhTransformId != x.group.TransformId() {
		return errors.Wrapf(protocol.ERR_INVALID_KE_PAYLOAD,
			"have %s, peer sent %s", x.group, ke.DhTransformId)
	}
	return x.SetPeerPublicValue(ke.KeyData)
}

// Destroy zeroes the private exponent and the shared secret before
// releasing them; both determine session key material. The public values
// are not secret. The exchange is unusable afterwards.
func (x *KeyExchange) Destroy() {
	wipe(x.private)
	wipe(x.secret)
	x.private = nil
	x.public = nil
	x.peerPublic = nil
	x.secret = nil
}

func wipe(n *big.Int) {
	if n == nil {
		return
	}
	bits := n.Bits()
	for i := range bits {
		bits[i] = 0
	}
	n.SetInt64(0)
}
