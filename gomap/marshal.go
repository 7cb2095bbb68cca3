package gomap

import (
	"encoding/json"
	"fmt"

	"github.com/configurik/go-configurik/encode"
	"github.com/configurik/go-configurik/format"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
)

var cborMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	cborMode = em
}

// Marshal encodes v in format f. Configurik output is freshly laid out: a
// record is written as a document, anything else as a single entity.
func Marshal(v any, f format.Format) ([]byte, error) {
	switch f {
	case format.JSONFormat:
		d, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(d, '\n'), nil
	case format.YAMLFormat:
		return yaml.Marshal(v)
	case format.CBORFormat:
		pv, err := Plain(v)
		if err != nil {
			return nil, err
		}
		return cborMode.Marshal(pv)
	case format.CfkFormat:
		if obj, ok := v.(*Object); ok {
			doc, err := ToDocument(obj)
			if err != nil {
				return nil, err
			}
			return []byte(encode.Restore(doc)), nil
		}
		ent, err := ToIR(v)
		if err != nil {
			return nil, err
		}
		return []byte(encode.Restore(ent) + "\n"), nil
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, f)
	}
}
