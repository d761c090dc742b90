package crypto

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/pkg/errors"

	"github.com/modpsec/ike/protocol"
)

// wire widths from the registry, in bytes
var modpLengths = map[protocol.DhTransformId]int{
	protocol.MODP_768:  96,
	protocol.MODP_1024: 128,
	protocol.MODP_1536: 192,
	protocol.MODP_2048: 256,
	protocol.MODP_3072: 384,
	protocol.MODP_4096: 512,
	protocol.MODP_6144: 768,
	protocol.MODP_8192: 1024,
}

// Second, independent transcription of the group 14 prime, RFC 3526 section 3.
// Guards the table in modp.go against transcription slips.
const rfc3526Group14 = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD129024E088A67CC74020BBEA63B139B22514A08798E3404DDEF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7EDEE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3DC2007CB8A163BF0598DA48361C55D39A69163FA8FD24CF5F83655D23DCA3AD961C62F356208552BB9ED529077096966D670C354E4ABC9804F1746C08CA18217C32905E462E36CE3BE39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9DE2BCBF6955817183995497CEA956AE515D2261898FA051015728E5A8AACAA68FFFFFFFFFFFFFFFF"

func TestGroupTable(t *testing.T) {
	for id, length := range modpLengths {
		group, err := GroupById(id)
		if err != nil {
			t.Fatal(err)
		}
		if group.Len() != length {
			t.Errorf("%s: modulus length %d, want %d", id, group.Len(), length)
		}
		if group.p.BitLen() != length*8 {
			t.Errorf("%s: modulus bit length %d, want %d", id, group.p.BitLen(), length*8)
		}
		if group.g.Cmp(big.NewInt(2)) != 0 {
			t.Errorf("%s: generator %s, want 2", id, group.g)
		}
		if group.p.Bit(0) != 1 {
			t.Errorf("%s: modulus is even", id)
		}
		// all MODP primes start and end with 64 one bits
		b := group.Bytes(group.p)
		for i := 0; i < 8; i++ {
			if b[i] != 0xFF || b[len(b)-1-i] != 0xFF {
				t.Errorf("%s: modulus does not carry the 64 bit 0xFF bounds", id)
				break
			}
		}
	}
}

func TestGroup14Transcription(t *testing.T) {
	group, err := GroupById(protocol.MODP_2048)
	if err != nil {
		t.Fatal(err)
	}
	want, ok := new(big.Int).SetString(rfc3526Group14, 16)
	if !ok {
		t.Fatal("bad test constant")
	}
	if group.p.Cmp(want) != 0 {
		t.Error("group 14 modulus does not match RFC 3526")
	}
}

func TestGroupLookupDeterminism(t *testing.T) {
	for id := range modpLengths {
		g1, err := GroupById(id)
		if err != nil {
			t.Fatal(err)
		}
		g2, err := GroupById(id)
		if err != nil {
			t.Fatal(err)
		}
		if g1.p.Cmp(g2.p) != 0 || g1.g.Cmp(g2.g) != 0 || g1.Len() != g2.Len() {
			t.Errorf("%s: lookup is not stable", id)
		}
	}
}

func TestUnsupportedGroup(t *testing.T) {
	for _, id := range []protocol.DhTransformId{
		protocol.MODP_NONE,
		protocol.ECP_256,
		protocol.DhTransformId(9999),
	} {
		group, err := GroupById(id)
		if group != nil {
			t.Errorf("%s: lookup returned a group", id)
		}
		if errors.Cause(err) != ErrorUnsupportedGroup {
			t.Errorf("%s: error %v, want ErrorUnsupportedGroup", id, err)
		}
	}
}

func testKeyEx(t *testing.T, tid protocol.DhTransformId, group *DhGroup) {
	t.Log("testing:", tid)
	pvt1, err := group.Private(rand.Reader)
	if err != nil {
		t.Error(err)
		return
	}
	pub1 := group.Public(pvt1)
	pvt2, err := group.Private(rand.Reader)
	if err != nil {
		t.Error(err)
		return
	}
	pub2 := group.Public(pvt2)
	// magic
	key1, err := group.DiffieHellman(pub2, pvt1)
	if err != nil {
		t.Error(err)
		return
	}
	key2, err := group.DiffieHellman(pub1, pvt2)
	if err != nil {
		t.Error(err)
		return
	}
	if key1.Cmp(key2) != 0 {
		t.Error("not same")
	}
	t.Logf("keylen: %d", len(key1.Bytes())*8)
}

func TestKeyEx(t *testing.T) {
	for tid, group := range kexAlgoMap {
		if testing.Short() && group.Len() > 512 {
			continue
		}
		testKeyEx(t, tid, group)
	}
}

func TestDiffieHellmanBounds(t *testing.T) {
	group, err := GroupById(protocol.MODP_1024)
	if err != nil {
		t.Fatal(err)
	}
	pvt, err := group.Private(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	for _, bad := range []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		new(big.Int).Sub(group.p, big.NewInt(1)),
		group.p,
		new(big.Int).Add(group.p, big.NewInt(5)),
	} {
		if _, err := group.DiffieHellman(bad, pvt); errors.Cause(err) != ErrorInvalidPublicValue {
			t.Errorf("value %s accepted, want ErrorInvalidPublicValue", bad)
		}
	}
	if _, err := group.DiffieHellman(big.NewInt(3), pvt); err != nil {
		t.Errorf("in range value rejected: %v", err)
	}
}

func TestFixedWidthBytes(t *testing.T) {
	group, err := GroupById(protocol.MODP_768)
	if err != nil {
		t.Fatal(err)
	}
	b := group.Bytes(big.NewInt(1))
	if len(b) != group.Len() {
		t.Fatalf("encoded length %d, want %d", len(b), group.Len())
	}
	for i := 0; i < len(b)-1; i++ {
		if b[i] != 0 {
			t.Fatal("padding is not zero")
		}
	}
	if b[len(b)-1] != 1 {
		t.Fatal("value not preserved")
	}
}
