package wallet

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
)

const ChecksumLength = 4

// Checksum returns the first four bytes of SHA256(SHA256(payload)).
func Checksum(payload []byte) []byte {
	return DoubleSha256(payload)[:ChecksumLength]
}

// AttachChecksum returns payloadHex with the upper case hex checksum of the
// decoded payload appended.
func AttachChecksum(payloadHex string) (string, error) {
	payload, err := DecodeHex(payloadHex)
	if err != nil {
		return "", err
	}
	return payloadHex + strings.ToUpper(EncodeHex(Checksum(payload))), nil
}

// CheckEncode is Base58Check: version ‖ payload ‖ checksum, Base58 encoded.
func CheckEncode(version byte, payload []byte) string {
	full := make([]byte, 0, 1+len(payload)+ChecksumLength)
	full = append(full, version)
	full = append(full, payload...)
	full = append(full, Checksum(full)...)
	return Base58Encode(full)
}

// CheckDecode reverses CheckEncode and verifies the checksum.
func CheckDecode(s string) (byte, []byte, error) {
	decoded, err := Base58Decode(s)
	if err != nil {
		return 0, nil, err
	}
	if len(decoded) < 1+ChecksumLength {
		return 0, nil, errors.Wrapf(ErrWrongLength, "base58check payload of %d bytes", len(decoded))
	}

	body := decoded[:len(decoded)-ChecksumLength]
	sum := decoded[len(decoded)-ChecksumLength:]
	if !bytes.Equal(sum, Checksum(body)) {
		return 0, nil, errors.Wrapf(ErrInvalidChecksum, "%q", s)
	}

	return body[0], body[1:], nil
}
