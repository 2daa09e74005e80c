package wallet

import (
	"encoding/hex"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// DecodeHex decodes upper or lower case hex. It rejects odd lengths and
// non-hex digits instead of decoding a prefix.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedHex, "%q: %v", s, err)
	}
	return b, nil
}

func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// Base58Encode uses the Bitcoin alphabet. Each leading zero byte becomes a
// leading '1'.
func Base58Encode(input []byte) string {
	return base58.Encode(input)
}

func Base58Decode(input string) ([]byte, error) {
	decoded, err := base58.Decode(input)
	if err != nil {
		return nil, errors.Wrapf(err, "base58 decode %q", input)
	}
	return decoded, nil
}

// decodeFixedHex decodes s after checking it holds exactly size bytes.
func decodeFixedHex(s string, size int, what string) ([]byte, error) {
	if len(s) != size*2 {
		return nil, errors.Wrapf(ErrWrongLength, "%s: expected %d hex chars, got %d", what, size*2, len(s))
	}
	b, err := DecodeHex(s)
	if err != nil {
		return nil, errors.Wrap(err, what)
	}
	return b, nil
}
