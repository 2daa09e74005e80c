package wallet

import "github.com/pkg/errors"

var (
	// ErrMalformedHex is returned for odd-length input or non-hex digits.
	ErrMalformedHex = errors.New("malformed hex")

	// ErrWrongLength is returned when a key, address or decoded payload does
	// not have the exact expected size.
	ErrWrongLength = errors.New("wrong length")

	// ErrInvalidScalar is returned for a private key that is zero or not
	// below the secp256k1 group order.
	ErrInvalidScalar = errors.New("invalid secp256k1 scalar")

	// ErrInvalidPrefix is returned when a public key does not start with 04
	// or an Ethereum address does not start with 0x.
	ErrInvalidPrefix = errors.New("invalid prefix")

	ErrInvalidChecksum = errors.New("invalid checksum")
	ErrInvalidVersion  = errors.New("invalid version byte")
)
