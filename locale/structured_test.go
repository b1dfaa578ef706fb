package locale_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/alqalam/campus-cms/locale"
)

func TestDecodeStructuredNil(t *testing.T) {
	got := locale.DecodeStructured(nil)
	if !got.IsZero() {
		t.Fatalf("expected zero structured, got %+v", got)
	}
	if got.Encode() != "" {
		t.Fatalf("zero structured must encode to empty string, got %q", got.Encode())
	}
}

func TestDecodeStructuredParsesJSON(t *testing.T) {
	got := locale.DecodeStructured(`{"features":[{"icon":"flask"}]}`)
	if got.Unparsed() {
		t.Fatal("expected parsed payload")
	}
	data, ok := got.Data().(map[string]any)
	if !ok {
		t.Fatalf("expected object payload, got %T", got.Data())
	}
	if _, ok := data["features"]; !ok {
		t.Fatal("expected features key")
	}
}

func TestDecodeStructuredPreservesMalformedInput(t *testing.T) {
	const raw = "not valid json"

	got := locale.DecodeStructured(raw)
	if !got.Unparsed() {
		t.Fatal("expected unparsed payload")
	}
	if got.Raw() != raw {
		t.Fatalf("raw payload altered: %q", got.Raw())
	}

	// Re-saving an unparsed payload must pass it through unchanged, without
	// double-encoding.
	if got.Encode() != raw {
		t.Fatalf("encode altered unparsed payload: %q", got.Encode())
	}

	again := locale.DecodeStructured(got.Encode())
	if again.Raw() != raw {
		t.Fatalf("second round trip altered payload: %q", again.Raw())
	}
}

func TestStructuredEncodeDecodeStable(t *testing.T) {
	original := map[string]any{
		"achievements": []any{
			map[string]any{"value": "500+", "label": map[string]any{"en": "Students", "ar": "طلاب"}},
		},
	}

	first := locale.NewStructured(original)
	second := locale.DecodeStructured(first.Encode())
	if !reflect.DeepEqual(first.Data(), second.Data()) {
		t.Fatalf("decode(encode(x)) != x: %#v != %#v", second.Data(), first.Data())
	}
}

func TestStructuredJSONMarshaling(t *testing.T) {
	parsed := locale.NewStructured(map[string]any{"a": float64(1)})
	data, err := json.Marshal(parsed)
	if err != nil {
		t.Fatalf("marshal parsed: %v", err)
	}
	if string(data) != `{"a":1}` {
		t.Fatalf("unexpected marshal output: %s", data)
	}

	unparsed := locale.DecodeStructured("not valid json")
	data, err = json.Marshal(unparsed)
	if err != nil {
		t.Fatalf("marshal unparsed: %v", err)
	}
	if string(data) != `"not valid json"` {
		t.Fatalf("unparsed payload must surface as its original string: %s", data)
	}

	var back locale.Structured
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Unparsed() || back.Raw() != "not valid json" {
		t.Fatalf("API round trip corrupted payload: %+v", back)
	}
}

func TestStructuredUnmarshalEncodedStringForm(t *testing.T) {
	var s locale.Structured
	if err := json.Unmarshal([]byte(`"{\"stats\":[]}"`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if s.Unparsed() {
		t.Fatal("string-encoded JSON should decode to a parsed payload")
	}
	if _, ok := s.Data().(map[string]any); !ok {
		t.Fatalf("expected object payload, got %T", s.Data())
	}
}

func TestStructuredScanValue(t *testing.T) {
	var s locale.Structured
	if err := s.Scan([]byte(`[1,2]`)); err != nil {
		t.Fatalf("scan: %v", err)
	}
	val, err := s.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if val.(string) != `[1,2]` {
		t.Fatalf("unexpected driver value: %v", val)
	}

	// Absent payloads must persist as the empty string, never SQL NULL, so
	// NOT NULL content columns accept records with no structured payload.
	var zero locale.Structured
	zeroVal, err := zero.Value()
	if err != nil {
		t.Fatalf("zero value: %v", err)
	}
	if zeroVal != "" {
		t.Fatalf("expected empty string for zero structured, got %v", zeroVal)
	}
	if got := locale.DecodeStructured(zeroVal); !got.IsZero() {
		t.Fatalf("zero structured did not survive the driver round trip: %+v", got)
	}
}

func TestAppendItem(t *testing.T) {
	def := map[string]any{"value": "", "label": map[string]any{"en": "", "ar": ""}}

	list := locale.AppendItem(nil, def)
	list = locale.AppendItem(list, def)
	if len(list) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list))
	}

	// The appended element is a copy: mutating it must not touch the default.
	list[0].(map[string]any)["value"] = "500+"
	if def["value"] != "" {
		t.Fatalf("default shape mutated: %+v", def)
	}
	if list[1].(map[string]any)["value"] != "" {
		t.Fatalf("sibling item affected: %+v", list[1])
	}
}

func TestRemoveItem(t *testing.T) {
	list := []any{"a", "b", "c"}

	got := locale.RemoveItem(list, 1)
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("unexpected result: %+v", got)
	}

	if got := locale.RemoveItem(list, 5); len(got) != 3 {
		t.Fatalf("out-of-range removal must be a no-op, got %+v", got)
	}
	if got := locale.RemoveItem(list, -1); len(got) != 3 {
		t.Fatalf("negative index removal must be a no-op, got %+v", got)
	}
}

func TestMergeItemShallowMerge(t *testing.T) {
	list := []any{
		map[string]any{"icon": "flask", "title": "Labs"},
		map[string]any{"icon": "book"},
	}

	got := locale.MergeItem(list, 0, map[string]any{"title": "Laboratories"})

	merged := got[0].(map[string]any)
	if merged["title"] != "Laboratories" {
		t.Fatalf("patch not applied: %+v", merged)
	}
	if merged["icon"] != "flask" {
		t.Fatalf("untouched keys must survive the merge: %+v", merged)
	}

	// Original list untouched.
	if list[0].(map[string]any)["title"] != "Labs" {
		t.Fatalf("input list mutated: %+v", list[0])
	}
	if got[1].(map[string]any)["icon"] != "book" {
		t.Fatalf("sibling element affected: %+v", got[1])
	}
}
