package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strings"
)

const (
	refreshTokenKey = "refresh_token"
	accessTokenKey  = "access_token"
)

// ErrMissingRefreshToken is returned when a document has no usable refresh_token
var ErrMissingRefreshToken = errors.New(`missing the key "refresh_token"`)

// Document represents the persisted credential document.
//
// RefreshToken is supplied by the user and never modified; AccessToken is a write-through
// cache updated after every refresh exchange. Keys other than these two are preserved
// verbatim so that a hand edited file survives a rewrite.
type Document struct {
	RefreshToken string
	AccessToken  string
	Extra        map[string]json.RawMessage
}

// Validate checks that document carries a refresh token
func (d *Document) Validate() error {
	if d == nil || strings.TrimSpace(d.RefreshToken) == "" {
		return ErrMissingRefreshToken
	}
	return nil
}

// Clone returns a copy safe to mutate
func (d *Document) Clone() *Document {
	ret := &Document{RefreshToken: d.RefreshToken, AccessToken: d.AccessToken}
	if len(d.Extra) > 0 {
		ret.Extra = make(map[string]json.RawMessage, len(d.Extra))
		for k, v := range d.Extra {
			ret.Extra[k] = v
		}
	}
	return ret
}

// MarshalJSON writes refresh_token, access_token (when set) and then extra keys in sorted order
func (d Document) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	if err := writeField(buf, refreshTokenKey, d.RefreshToken, false); err != nil {
		return nil, err
	}
	if d.AccessToken != "" {
		if err := writeField(buf, accessTokenKey, d.AccessToken, true); err != nil {
			return nil, err
		}
	}
	keys := make([]string, 0, len(d.Extra))
	for k := range d.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := writeField(buf, k, d.Extra[k], true); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a credential document
func (d *Document) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errors.New("credential document must be a JSON object")
	}
	*d = Document{}
	if raw, ok := fields[refreshTokenKey]; ok {
		if err := unmarshalToken(raw, &d.RefreshToken); err != nil {
			return err
		}
		delete(fields, refreshTokenKey)
	}
	if raw, ok := fields[accessTokenKey]; ok {
		// a malformed cached token is treated as absent; the next refresh overwrites it
		if err := unmarshalToken(raw, &d.AccessToken); err != nil {
			d.AccessToken = ""
		}
		delete(fields, accessTokenKey)
	}
	if len(fields) > 0 {
		d.Extra = fields
	}
	return nil
}

func unmarshalToken(raw json.RawMessage, dest *string) error {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

func writeField(buf *bytes.Buffer, key string, value interface{}, comma bool) error {
	if comma {
		buf.WriteByte(',')
	}
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}
