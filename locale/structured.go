package locale

import (
	"database/sql/driver"
	"encoding/json"
)

// Structured holds the free-form JSON payload attached to a content section.
// Its internal schema varies per section type and is not validated here. A
// stored value that fails to parse is preserved verbatim as an unparsed raw
// string so editors can display and re-save it without corruption; decoding
// never discards user content.
type Structured struct {
	value    any
	raw      string
	unparsed bool
}

// NewStructured wraps an already-decoded JSON value.
func NewStructured(value any) Structured {
	if value == nil {
		return Structured{}
	}
	return Structured{value: value}
}

// DecodeStructured normalizes any persisted or wire representation. nil and
// empty strings decode to the zero value; strings are parsed as JSON with
// parse failures retained as unparsed raw text; decoded values pass through.
func DecodeStructured(raw any) Structured {
	switch v := raw.(type) {
	case nil:
		return Structured{}
	case Structured:
		return v
	case *Structured:
		if v == nil {
			return Structured{}
		}
		return *v
	case string:
		return decodeStructuredString(v)
	case []byte:
		return decodeStructuredString(string(v))
	case json.RawMessage:
		return decodeStructuredString(string(v))
	default:
		return Structured{value: v}
	}
}

func decodeStructuredString(raw string) Structured {
	if raw == "" {
		return Structured{}
	}
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return Structured{raw: raw, unparsed: true}
	}
	if value == nil {
		return Structured{}
	}
	return Structured{value: value}
}

// Data returns the decoded payload, or nil when zero or unparsed.
func (s Structured) Data() any {
	if s.unparsed {
		return nil
	}
	return s.value
}

// Raw returns the original string for an unparsed payload, exactly as stored.
func (s Structured) Raw() string {
	return s.raw
}

// Unparsed reports whether the payload failed to parse and is carried as an
// opaque string.
func (s Structured) Unparsed() bool {
	return s.unparsed
}

// IsZero reports whether no payload is present at all.
func (s Structured) IsZero() bool {
	return !s.unparsed && s.value == nil
}

// Encode serializes the payload to its storage form. Unparsed payloads pass
// through unchanged rather than being double-encoded; the zero value encodes
// to the empty string.
func (s Structured) Encode() string {
	if s.unparsed {
		return s.raw
	}
	if s.value == nil {
		return ""
	}
	data, err := json.Marshal(s.value)
	if err != nil {
		return ""
	}
	return string(data)
}

// MarshalJSON renders the payload for API responses: the decoded value when
// parsed, the original string when unparsed, null when absent.
func (s Structured) MarshalJSON() ([]byte, error) {
	if s.unparsed {
		return json.Marshal(s.raw)
	}
	if s.value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(s.value)
}

// UnmarshalJSON accepts both inline JSON structures and the string-encoded
// form. A JSON string whose contents parse as JSON is treated as the encoded
// storage form; one that does not is retained unparsed, so a round trip
// through the API leaves it byte-for-byte intact.
func (s *Structured) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = DecodeStructured(str)
		return nil
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		*s = Structured{raw: string(data), unparsed: true}
		return nil
	}
	*s = NewStructured(value)
	return nil
}

// Scan implements sql.Scanner.
func (s *Structured) Scan(src any) error {
	*s = DecodeStructured(src)
	return nil
}

// Value implements driver.Valuer. Absent payloads persist as the empty
// string rather than NULL; DecodeStructured restores them to the zero value
// on read.
func (s Structured) Value() (driver.Value, error) {
	return s.Encode(), nil
}
