package wallet

import (
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicKeyFromPrivate(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"reference key", testPrivateKey, testPublicKey},
		{
			"generator",
			"0000000000000000000000000000000000000000000000000000000000000001",
			"0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
				"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		},
		{
			"order minus one",
			"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
			"0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
				"b7c52588d95c3b9aa25b0403f1eef75702e84bb7597aabe663b82f6f04ef2777",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PublicKeyFromPrivate(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, UncompressedPublicKeyLength*2)
		})
	}
}

func TestPublicKeyFromPrivateRejectsInvalidScalars(t *testing.T) {
	orderPlusOne := new(big.Int)
	orderPlusOne.SetString(curveOrder, 16)
	orderPlusOne.Add(orderPlusOne, big.NewInt(1))

	for name, key := range map[string]string{
		"zero":           strings.Repeat("0", 64),
		"order":          curveOrder,
		"order plus one": orderPlusOne.Text(16),
		"all ones":       strings.Repeat("f", 64),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := PublicKeyFromPrivate(key)
			assert.ErrorIs(t, err, ErrInvalidScalar)
		})
	}
}

func TestPublicKeyFromPrivateRejectsMalformedKeys(t *testing.T) {
	_, err := PublicKeyFromPrivate("")
	assert.ErrorIs(t, err, ErrWrongLength)

	_, err = PublicKeyFromPrivate(testPrivateKey[1:])
	assert.ErrorIs(t, err, ErrWrongLength)

	_, err = PublicKeyFromPrivate(strings.Repeat("x", 64))
	assert.ErrorIs(t, err, ErrMalformedHex)
}

func TestPublicKeyFromPrivateMatchesGoEthereum(t *testing.T) {
	for _, key := range testKeys(16) {
		raw, err := DecodeHex(key)
		require.NoError(t, err)
		privKey, err := crypto.ToECDSA(raw)
		require.NoError(t, err)

		got, err := PublicKeyFromPrivate(key)
		require.NoError(t, err)
		assert.Equal(t, EncodeHex(crypto.FromECDSAPub(&privKey.PublicKey)), got)
	}
}

func TestPrivateKeyMutation(t *testing.T) {
	for i := 0; i < len(testPrivateKey); i++ {
		mutated := flipHexDigit(testPrivateKey, i)

		wif, err := EncodeWIF(mutated)
		require.NoError(t, err)
		assert.NotEqual(t, testWIF, wif, "position %d", i)

		w, err := NewWallet(mutated)
		require.NoError(t, err)
		keys, err := w.Derive()
		require.NoError(t, err)
		assert.NotEqual(t, testBTCAddress, keys.BitcoinAddress, "position %d", i)
		assert.NotEqual(t, testETHAddress, keys.EthereumAddress, "position %d", i)
	}
}
