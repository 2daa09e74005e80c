package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	assert.Equal(t, "5df6e0e2", EncodeHex(Checksum(nil)))
	assert.Equal(t, "1406e058", EncodeHex(Checksum([]byte{0x00})))
	assert.Len(t, Checksum([]byte("anything")), ChecksumLength)
}

func TestAttachChecksum(t *testing.T) {
	t.Run("appends upper case suffix", func(t *testing.T) {
		payload := "80" + testPrivateKey + "01"

		got, err := AttachChecksum(payload)
		require.NoError(t, err)
		assert.Equal(t, payload+"A66823C1", got)
	})

	t.Run("empty payload", func(t *testing.T) {
		got, err := AttachChecksum("")
		require.NoError(t, err)
		assert.Equal(t, "5DF6E0E2", got)
	})

	t.Run("does not touch the input", func(t *testing.T) {
		payload := "00ff"
		_, err := AttachChecksum(payload)
		require.NoError(t, err)
		assert.Equal(t, "00ff", payload)
	})

	t.Run("rejects odd length", func(t *testing.T) {
		_, err := AttachChecksum("800")
		assert.ErrorIs(t, err, ErrMalformedHex)
	})

	t.Run("rejects non hex digits", func(t *testing.T) {
		_, err := AttachChecksum("80zz")
		assert.ErrorIs(t, err, ErrMalformedHex)
	})
}

func TestCheckEncodeDecode(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		payload := []byte{0xde, 0xad, 0xbe, 0xef}

		encoded := CheckEncode(0x05, payload)
		v, got, err := CheckDecode(encoded)
		require.NoError(t, err)
		assert.Equal(t, byte(0x05), v)
		assert.Equal(t, payload, got)
	})

	t.Run("keeps every leading zero byte", func(t *testing.T) {
		payload := []byte{0x00, 0x00, 0x01}

		encoded := CheckEncode(0x00, payload)
		assert.Equal(t, "111", encoded[:3])
		assert.NotEqual(t, byte('1'), encoded[3])

		_, got, err := CheckDecode(encoded)
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("detects corruption", func(t *testing.T) {
		encoded := []byte(CheckEncode(0x00, []byte("payload")))
		if encoded[5] == 'a' {
			encoded[5] = 'b'
		} else {
			encoded[5] = 'a'
		}

		_, _, err := CheckDecode(string(encoded))
		assert.ErrorIs(t, err, ErrInvalidChecksum)
	})

	t.Run("rejects short input", func(t *testing.T) {
		_, _, err := CheckDecode(Base58Encode([]byte{1, 2, 3}))
		assert.ErrorIs(t, err, ErrWrongLength)
	})

	t.Run("rejects non base58 characters", func(t *testing.T) {
		_, _, err := CheckDecode("0OIl")
		assert.Error(t, err)
	})
}

func TestDecodeHex(t *testing.T) {
	b, err := DecodeHex("00FFaB")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff, 0xab}, b)

	for _, bad := range []string{"0", "0g", "0x00", " 00"} {
		_, err := DecodeHex(bad)
		assert.ErrorIs(t, err, ErrMalformedHex, bad)
	}
}

func TestBase58LeadingZeros(t *testing.T) {
	for zeros := 0; zeros < 4; zeros++ {
		in := append(make([]byte, zeros), 0x3a, 0x7f)

		encoded := Base58Encode(in)
		for i := 0; i < zeros; i++ {
			assert.Equal(t, byte('1'), encoded[i])
		}
		assert.NotEqual(t, byte('1'), encoded[zeros])

		decoded, err := Base58Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, in, decoded)
	}
}
