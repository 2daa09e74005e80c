package wallet

import (
	"github.com/pkg/errors"
)

const (
	// PrivateKeyLength is the size of a secp256k1 scalar in bytes.
	PrivateKeyLength = 32

	//mainnet private key version
	wifVersion = byte(0x80)

	//marks a key whose public key is used compressed
	compressFlag = byte(0x01)
)

// EncodeWIF encodes a 64 hex char private key in Wallet Import Format for
// mainnet with the compressed public key flag set.
func EncodeWIF(privateKeyHex string) (string, error) {
	if _, err := decodeFixedHex(privateKeyHex, PrivateKeyLength, "private key"); err != nil {
		return "", err
	}

	payload := "80" + privateKeyHex + "01"
	checked, err := AttachChecksum(payload)
	if err != nil {
		return "", err
	}

	raw, err := DecodeHex(checked)
	if err != nil {
		return "", err
	}
	return Base58Encode(raw), nil
}

// DecodeWIF returns the lowercase hex private key held by wif and whether it
// is flagged for a compressed public key.
func DecodeWIF(wif string) (string, bool, error) {
	version, payload, err := CheckDecode(wif)
	if err != nil {
		return "", false, err
	}
	if version != wifVersion {
		return "", false, errors.Wrapf(ErrInvalidVersion, "wif version 0x%02x", version)
	}

	switch {
	case len(payload) == PrivateKeyLength:
		return EncodeHex(payload), false, nil
	case len(payload) == PrivateKeyLength+1 && payload[PrivateKeyLength] == compressFlag:
		return EncodeHex(payload[:PrivateKeyLength]), true, nil
	default:
		return "", false, errors.Wrapf(ErrWrongLength, "wif payload of %d bytes", len(payload))
	}
}
