package model

import (
	"bytes"
	"errors"

	"github.com/goccy/go-json"
)

// ErrNotObject is returned when a record in the payload is not a JSON object.
var ErrNotObject = errors.New("record is not a JSON object")

// Verbatim is a field rendered exactly as received: a JSON string contributes its
// text, any other JSON value contributes its literal source text. null renders empty.
type Verbatim string

func (v *Verbatim) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*v = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Verbatim(s)
	default:
		*v = Verbatim(b)
	}
	return nil
}

// Card is the renderer's view of a Record.
type Card struct {
	Title       Verbatim `json:"title"`
	Description Verbatim `json:"description"`
	Price       Verbatim `json:"price"`
}

// DecodeCard decodes one element of the /data array. Columns other than
// title, description and price are ignored.
func DecodeCard(raw []byte) (Card, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return Card{}, ErrNotObject
	}
	var c Card
	if err := json.Unmarshal(raw, &c); err != nil {
		return Card{}, err
	}
	return c, nil
}
