package wallet

import "strings"

type Wallet struct {
	//32 byte secp256k1 scalar, lowercase hex
	PrivateKey string

	//uncompressed 04 ‖ X ‖ Y, lowercase hex
	PublicKey string
}

// Keys is every encoding derived from one private key.
type Keys struct {
	PrivateKey          string `json:"private_key"`
	PublicKey           string `json:"public_key"`
	CompressedPublicKey string `json:"compressed_public_key"`
	WIF                 string `json:"wif"`
	BitcoinAddress      string `json:"btc_address"`
	EthereumAddress     string `json:"eth_address"`
}

// NewWallet validates the private key and derives its public key.
func NewWallet(privateKeyHex string) (*Wallet, error) {
	pub, err := PublicKeyFromPrivate(privateKeyHex)
	if err != nil {
		return nil, err
	}
	return &Wallet{PrivateKey: strings.ToLower(privateKeyHex), PublicKey: pub}, nil
}

func (w Wallet) WIF() (string, error) {
	return EncodeWIF(w.PrivateKey)
}

func (w Wallet) CompressedPublicKey() (string, error) {
	return CompressPublicKey(w.PublicKey)
}

func (w Wallet) BitcoinAddress() (string, error) {
	return DeriveBTCAddress(w.PublicKey)
}

func (w Wallet) EthereumAddress() (string, error) {
	return DeriveETHAddress(w.PublicKey)
}

// Derive runs every pipeline and fails on the first error.
func (w Wallet) Derive() (*Keys, error) {
	keys := &Keys{PrivateKey: w.PrivateKey, PublicKey: w.PublicKey}

	steps := []struct {
		dst *string
		fn  func() (string, error)
	}{
		{&keys.CompressedPublicKey, w.CompressedPublicKey},
		{&keys.WIF, w.WIF},
		{&keys.BitcoinAddress, w.BitcoinAddress},
		{&keys.EthereumAddress, w.EthereumAddress},
	}
	for _, step := range steps {
		v, err := step.fn()
		if err != nil {
			return nil, err
		}
		*step.dst = v
	}

	return keys, nil
}
