package wallet

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// EthAddressLength is the size of an Ethereum address in bytes.
	EthAddressLength = 20

	ethPrefix = "0x"
)

// DeriveETHAddress returns the EIP-55 address of an uncompressed public key:
// the last 20 bytes of Keccak256(X ‖ Y). The 04 prefix is not hashed.
func DeriveETHAddress(pubKeyHex string) (string, error) {
	x, y, err := SplitPublicKey(pubKeyHex)
	if err != nil {
		return "", err
	}
	point, err := DecodeHex(x + y)
	if err != nil {
		return "", err
	}

	digest := Keccak256(point)
	return EIP55Checksum(ethPrefix + EncodeHex(digest[len(digest)-EthAddressLength:]))
}

// EIP55Checksum returns the mixed-case checksum encoding of address.
//
// The hash input is the ASCII text of the lowercase hex digits, not the 20
// address bytes. A letter is upper cased when the matching nibble of that
// hash is 8 or more.
func EIP55Checksum(address string) (string, error) {
	body, err := ethAddressBody(address)
	if err != nil {
		return "", err
	}

	digest := Keccak256([]byte(body))
	out := []byte(body)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0x0f >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}

	return ethPrefix + string(out), nil
}

// VerifyEIP55 checks the mixed-case checksum of address. Addresses written
// entirely in one case carry no checksum and are accepted.
func VerifyEIP55(address string) error {
	body, err := ethAddressBody(address)
	if err != nil {
		return err
	}
	given := address[len(ethPrefix):]
	if given == body || given == strings.ToUpper(body) {
		return nil
	}

	want, err := EIP55Checksum(address)
	if err != nil {
		return err
	}
	if want != address {
		return errors.Wrapf(ErrInvalidChecksum, "%s, want %s", address, want)
	}
	return nil
}

// ethAddressBody validates a 0x prefixed address and returns its 40 hex
// digits in lower case.
func ethAddressBody(address string) (string, error) {
	if len(address) != len(ethPrefix)+EthAddressLength*2 {
		return "", errors.Wrapf(ErrWrongLength, "address: expected %d chars, got %d", len(ethPrefix)+EthAddressLength*2, len(address))
	}
	if address[:len(ethPrefix)] != ethPrefix {
		return "", errors.Wrapf(ErrInvalidPrefix, "address %q does not start with 0x", address)
	}

	body := strings.ToLower(address[len(ethPrefix):])
	if _, err := DecodeHex(body); err != nil {
		return "", errors.Wrap(err, "address")
	}
	return body, nil
}
