package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"io"
	"log"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"github.com/modpsec/ike/protocol"
)

// DebugCrypto turns on hex dumps of exchanged public values
var DebugCrypto = false

var (
	ErrorUnsupportedGroup   = errors.New("IKE: unsupported DH transform")
	ErrorInvalidPublicValue = errors.New("IKE: invalid KeyExchange public value")
)

// DhGroup is a multiplicative group suitable for implementing Diffie-Hellman
// key agreement. The table of supported groups is fixed at process start and
// is safe for concurrent lookups.
type DhGroup struct {
	protocol.DhTransformId
	p *big.Int // prime modulus, network order
	g *big.Int // generator, 2 for every supported group
}

func (group *DhGroup) String() string {
	return group.DhTransformId.String()
}

func (group *DhGroup) TransformId() protocol.DhTransformId {
	return group.DhTransformId
}

// Len is the length of the modulus in bytes. It is the authoritative wire
// width for every value associated with the group, public and secret alike.
func (group *DhGroup) Len() int {
	return (group.p.BitLen() + 7) / 8
}

// Private picks a fresh exponent, uniform over [1, p-1]. The full modulus
// range is used rather than a reduced exponent window.
func (group *DhGroup) Private(randSource io.Reader) (*big.Int, error) {
	for {
		priv, err := rand.Int(randSource, group.p)
		if err != nil {
			return nil, err
		}
		if priv.Sign() > 0 {
			return priv, nil
		}
	}
}

func (group *DhGroup) Public(x *big.Int) *big.Int {
	return new(big.Int).Exp(group.g, x, group.p)
}

// DiffieHellman computes the shared group element from the peer's public
// value. Values outside [2, p-2] are rejected per RFC 6989; 0, 1 and p-1
// force the secret into a known subgroup.
func (group *DhGroup) DiffieHellman(theirPublic, myPrivate *big.Int) (*big.Int, error) {
	two := big.NewInt(2)
	pMinus2 := new(big.Int).Sub(group.p, two)
	if theirPublic.Cmp(two) < 0 || theirPublic.Cmp(pMinus2) > 0 {
		return nil, errors.Wrap(ErrorInvalidPublicValue, "out of range")
	}
	if DebugCrypto {
		log.Printf("DH %s: peer public:\n%s", group, hex.Dump(group.Bytes(theirPublic)))
	}
	return new(big.Int).Exp(theirPublic, myPrivate, group.p), nil
}

// Bytes encodes a group element as a fixed-width big-endian byte string of
// exactly Len() bytes, left zero padded. Peers decode the field by length.
func (group *DhGroup) Bytes(n *big.Int) []byte {
	b := make([]byte, group.Len())
	nb := n.Bytes()
	copy(b[len(b)-len(nb):], nb)
	return b
}

var kexAlgoMap map[protocol.DhTransformId]*DhGroup

func init() {
	kexAlgoMap = make(map[protocol.DhTransformId]*DhGroup)
	addModpGroups(kexAlgoMap)
}

// GroupById looks up the parameters of a standardized MODP group.
func GroupById(id protocol.DhTransformId) (*DhGroup, error) {
	group, ok := kexAlgoMap[id]
	if !ok {
		return nil, errors.Wrap(ErrorUnsupportedGroup, id.String())
	}
	return group, nil
}

func trim(grp string) string {
	mm := func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\t' {
			return -1
		}
		return r
	}
	return strings.Map(mm, grp)
}
