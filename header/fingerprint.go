package header

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"tuple-mapper/model"
)

type fingerprintHeader struct {
	Model      string                 `msgpack:"model"`
	Attributes []fingerprintAttribute `msgpack:"attributes"`
}

type fingerprintAttribute struct {
	Name       string             `msgpack:"name"`
	From       string             `msgpack:"from"`
	Shape      ShapeEnum          `msgpack:"shape"`
	Combinator CombinatorEnum     `msgpack:"combinator"`
	Header     *fingerprintHeader `msgpack:"header,omitempty"`
}

func fingerprintTree(h *Header) *fingerprintHeader {
	if h == nil {
		return nil
	}

	out := &fingerprintHeader{
		Attributes: make([]fingerprintAttribute, len(h.attributes)),
	}

	out.Model = model.Identity(h.model)

	for i, a := range h.attributes {
		out.Attributes[i] = fingerprintAttribute{
			Name:       a.Name,
			From:       a.From,
			Shape:      a.Shape,
			Combinator: a.Combinator,
			Header:     fingerprintTree(a.Header),
		}
	}

	return out
}

func fingerprint(h *Header) (string, error) {
	data, err := msgpack.Marshal(fingerprintTree(h))
	if err != nil {
		return "", fmt.Errorf("failed to encode header: %w", err)
	}

	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:]), nil
}
