package wallet

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// UncompressedPublicKeyLength is 04 ‖ X ‖ Y in bytes.
	UncompressedPublicKeyLength = 65
	CompressedPublicKeyLength   = 33

	// PubKeyHashLength is the size of a hash160.
	PubKeyHashLength = 20

	coordinateLength = 32

	//hexadecimal representation of 0, mainnet P2PKH
	version = byte(0x00)
)

// SplitPublicKey checks that pubKeyHex is an uncompressed public key and
// returns its X and Y coordinates as 64 hex char strings.
func SplitPublicKey(pubKeyHex string) (string, string, error) {
	raw, err := decodeFixedHex(pubKeyHex, UncompressedPublicKeyLength, "public key")
	if err != nil {
		return "", "", err
	}
	if raw[0] != 0x04 {
		return "", "", errors.Wrapf(ErrInvalidPrefix, "public key starts with %s, want 04", pubKeyHex[:2])
	}
	return pubKeyHex[2:66], pubKeyHex[66:130], nil
}

// CompressedPrefix returns 02 for an even Y coordinate and 03 for an odd one.
// Y is read as a 256-bit big-endian integer, so only its last digit matters.
func CompressedPrefix(yHex string) (string, error) {
	y, err := decodeFixedHex(yHex, coordinateLength, "y coordinate")
	if err != nil {
		return "", err
	}
	if y[coordinateLength-1]&1 == 0 {
		return "02", nil
	}
	return "03", nil
}

// CompressPublicKey turns a 130 hex char uncompressed public key into its 66
// hex char SEC1 compressed form.
func CompressPublicKey(pubKeyHex string) (string, error) {
	x, y, err := SplitPublicKey(pubKeyHex)
	if err != nil {
		return "", err
	}
	prefix, err := CompressedPrefix(y)
	if err != nil {
		return "", err
	}
	return prefix + strings.ToLower(x), nil
}

// DeriveBTCAddress returns the mainnet P2PKH address of the compressed form
// of an uncompressed public key.
func DeriveBTCAddress(pubKeyHex string) (string, error) {
	compressed, err := CompressPublicKey(pubKeyHex)
	if err != nil {
		return "", err
	}
	raw, err := DecodeHex(compressed)
	if err != nil {
		return "", err
	}
	return CheckEncode(version, PublicKeyHash(raw)), nil
}

// AddressPubKeyHash returns the hash160 carried by a P2PKH address.
func AddressPubKeyHash(address string) ([]byte, error) {
	v, pubKeyHash, err := CheckDecode(address)
	if err != nil {
		return nil, err
	}
	if v != version {
		return nil, errors.Wrapf(ErrInvalidVersion, "address version 0x%02x", v)
	}
	if len(pubKeyHash) != PubKeyHashLength {
		return nil, errors.Wrapf(ErrWrongLength, "address hash of %d bytes", len(pubKeyHash))
	}
	return pubKeyHash, nil
}

func ValidateAddress(address string) bool {
	_, err := AddressPubKeyHash(address)
	return err == nil
}
