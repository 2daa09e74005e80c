package wallet

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"
)

// PublicKeyFromPrivate multiplies the secp256k1 generator by the private key
// and returns the uncompressed public key 04 ‖ X ‖ Y as lowercase hex.
func PublicKeyFromPrivate(privateKeyHex string) (string, error) {
	raw, err := decodeFixedHex(privateKeyHex, PrivateKeyLength, "private key")
	if err != nil {
		return "", err
	}
	defer wipe(raw)

	// PrivKeyFromBytes reduces modulo N, so out of range keys must be caught here.
	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(raw); overflow {
		return "", errors.Wrap(ErrInvalidScalar, "private key is not below the curve order")
	}
	if scalar.IsZero() {
		return "", errors.Wrap(ErrInvalidScalar, "private key is zero")
	}
	scalar.Zero()

	privKey, pubKey := btcec.PrivKeyFromBytes(raw)
	defer privKey.Zero()

	return EncodeHex(pubKey.SerializeUncompressed()), nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
