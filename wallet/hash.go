package wallet

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // hash160 is defined on RIPEMD-160
	"golang.org/x/crypto/sha3"
)

func Sha256(b []byte) []byte {
	h := sha256.Sum256(b)
	return h[:]
}

// DoubleSha256 is SHA256(SHA256(b)), the Base58Check checksum hash.
func DoubleSha256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

func Ripemd160(b []byte) []byte {
	hasher := ripemd160.New()
	_, _ = hasher.Write(b)
	return hasher.Sum(nil)
}

// PublicKeyHash returns hash160 of a serialized public key:
// RIPEMD160(SHA256(pubKey)).
func PublicKeyHash(pubKey []byte) []byte {
	return Ripemd160(Sha256(pubKey))
}

// Keccak256 is the original Keccak submission used by Ethereum, not the
// padded FIPS-202 SHA3-256.
func Keccak256(b []byte) []byte {
	hasher := sha3.NewLegacyKeccak256()
	_, _ = hasher.Write(b)
	return hasher.Sum(nil)
}
