package locale

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Supported locale codes. The platform publishes every user-facing string in
// English and Arabic; additional locales require a schema change and are out
// of scope for this layer.
const (
	English = "en"
	Arabic  = "ar"
)

// DefaultCode is the locale under which untranslated legacy values surface.
// Older rows occasionally store a bare string instead of the encoded {en,ar}
// document; decoding maps that string to this locale, never to both.
const DefaultCode = English

// Text is a bilingual text value. Both fields are always addressable: a
// missing or malformed stored value decodes to empty strings, never to an
// absent field, so consumers can read EN and AR without nil checks.
type Text struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// NewText builds a Text from explicit locale values.
func NewText(en, ar string) Text {
	return Text{EN: en, AR: ar}
}

// IsZero reports whether both locales are empty.
func (t Text) IsZero() bool {
	return t.EN == "" && t.AR == ""
}

// Get returns the value stored for the given locale code, or "" when the
// code is not a supported locale.
func (t Text) Get(code string) string {
	switch normalizeCode(code) {
	case English:
		return t.EN
	case Arabic:
		return t.AR
	default:
		return ""
	}
}

// Lookup resolves the display string for a locale with the mandatory
// three-tier fallback: the requested locale if non-empty, then English, then
// Arabic, then the caller-supplied default. Public pages must never render an
// empty string while either locale has content.
func (t Text) Lookup(code, fallback string) string {
	if v := t.Get(code); v != "" {
		return v
	}
	if t.EN != "" {
		return t.EN
	}
	if t.AR != "" {
		return t.AR
	}
	return fallback
}

// DecodeText normalizes any persisted or wire representation into a Text.
// Accepted inputs: nil, a JSON-encoded {en,ar} document, a bare legacy
// string, a decoded map, or an existing Text. Decoding never fails; malformed
// JSON degrades to a single untranslated value under DefaultCode so content
// saved by older schema versions is never lost.
func DecodeText(raw any) Text {
	switch v := raw.(type) {
	case nil:
		return Text{}
	case Text:
		return v
	case *Text:
		if v == nil {
			return Text{}
		}
		return *v
	case string:
		return decodeTextString(v)
	case []byte:
		return decodeTextString(string(v))
	case json.RawMessage:
		return decodeTextString(string(v))
	case map[string]any:
		return textFromMap(v)
	case map[string]string:
		out := Text{}
		for key, val := range v {
			switch normalizeCode(key) {
			case English:
				out.EN = val
			case Arabic:
				out.AR = val
			}
		}
		return out
	default:
		return Text{}
	}
}

// EncodeText serializes a Text to its storage form. Both keys are always
// present so that DecodeText(EncodeText(v)) == v for every value.
func EncodeText(t Text) string {
	data, err := json.Marshal(t)
	if err != nil {
		// Marshaling a struct of two strings cannot fail; keep the codec total.
		return `{"en":"","ar":""}`
	}
	return string(data)
}

func decodeTextString(raw string) Text {
	if strings.TrimSpace(raw) == "" {
		return Text{}
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil || fields == nil {
		// Legacy single-locale value: surface it under the default locale
		// only. Duplicating it into both locales would fabricate a
		// translation that was never authored.
		return Text{EN: raw}
	}
	return textFromMap(fields)
}

func textFromMap(values map[string]any) Text {
	out := Text{}
	for key, val := range values {
		code := normalizeCode(key)
		if code != English && code != Arabic {
			continue
		}
		str, ok := val.(string)
		if !ok {
			if val == nil {
				continue
			}
			str = fmt.Sprint(val)
		}
		switch code {
		case English:
			out.EN = str
		case Arabic:
			out.AR = str
		}
	}
	return out
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// UnmarshalJSON accepts both the decoded object form and the pre-encoded
// string form the admin API transmits. Unknown shapes decode to the zero
// value rather than erroring so a malformed field never rejects the record
// it travels with.
func (t *Text) UnmarshalJSON(data []byte) error {
	var obj struct {
		EN *string `json:"en"`
		AR *string `json:"ar"`
	}
	if err := json.Unmarshal(data, &obj); err == nil && (obj.EN != nil || obj.AR != nil) {
		out := Text{}
		if obj.EN != nil {
			out.EN = *obj.EN
		}
		if obj.AR != nil {
			out.AR = *obj.AR
		}
		*t = out
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*t = DecodeText(str)
		return nil
	}

	*t = Text{}
	return nil
}

// Scan implements sql.Scanner, decoding the stored column value.
func (t *Text) Scan(src any) error {
	*t = DecodeText(src)
	return nil
}

// Value implements driver.Valuer. The zero Text persists as
// {"en":"","ar":""}, never as NULL, so NOT NULL columns accept every value
// this codec can produce.
func (t Text) Value() (driver.Value, error) {
	return EncodeText(t), nil
}
