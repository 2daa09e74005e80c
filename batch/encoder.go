package batch

import (
	"fmt"
	"io"

	"github.com/TualatinX/chainaddr/wallet"
	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"
)

// Encoder writes one value per call.
type Encoder interface {
	Encode(v interface{}) error
}

type jsonEncoder struct {
	w   io.Writer
	enc *codec.Encoder
}

// NewJSONEncoder writes each value as a JSON document on its own line.
func NewJSONEncoder(w io.Writer) Encoder {
	jh := new(codec.JsonHandle)
	return &jsonEncoder{w: w, enc: codec.NewEncoder(w, jh)}
}

func (e *jsonEncoder) Encode(v interface{}) error {
	if err := e.enc.Encode(v); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, "\n")
	return err
}

type textEncoder struct {
	w io.Writer
}

// NewTextEncoder writes derived keys as aligned "label: value" lines and
// batch results as tab separated rows.
func NewTextEncoder(w io.Writer) Encoder {
	return &textEncoder{w: w}
}

func (e *textEncoder) Encode(v interface{}) error {
	var err error
	switch v := v.(type) {
	case *wallet.Keys:
		for _, row := range [][2]string{
			{"private key", v.PrivateKey},
			{"public key", v.PublicKey},
			{"compressed public key", v.CompressedPublicKey},
			{"wif", v.WIF},
			{"btc address", v.BitcoinAddress},
			{"eth address", v.EthereumAddress},
		} {
			if _, err = fmt.Fprintf(e.w, "%-22s %s\n", row[0]+":", row[1]); err != nil {
				return err
			}
		}
	case Result:
		if v.Err != "" {
			_, err = fmt.Fprintf(e.w, "%d\terror: %s\n", v.Line, v.Err)
		} else {
			_, err = fmt.Fprintf(e.w, "%d\t%s\t%s\t%s\n", v.Line, v.Keys.WIF, v.Keys.BitcoinAddress, v.Keys.EthereumAddress)
		}
	default:
		_, err = fmt.Fprintln(e.w, v)
	}
	return err
}

// NewEncoder returns the encoder for an output format name.
func NewEncoder(format string, w io.Writer) (Encoder, error) {
	switch format {
	case "text":
		return NewTextEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	default:
		return nil, errors.Errorf("unknown output format %q, want text or json", format)
	}
}
