package sections

import (
	"encoding/json"

	"github.com/alqalam/campus-cms/locale"
)

// Section keys whose structured payload has a known shape. Everything else is
// carried as an opaque payload.
const (
	KeyWhyChoose    = "why_choose"
	KeyAchievements = "achievements"
	KeyStats        = "stats"
)

// PayloadKind tags the decoded variant of a section's structured content.
type PayloadKind string

const (
	KindWhyChoose    PayloadKind = "why_choose"
	KindAchievements PayloadKind = "achievements"
	KindStats        PayloadKind = "stats"
	KindOpaque       PayloadKind = "opaque"
)

// Payload is the tagged union over the structured content shapes this layer
// understands. Unknown or unparseable payloads decode to OpaquePayload so the
// escape hatch is always available.
type Payload interface {
	Kind() PayloadKind
}

// Feature is one entry of a "why choose us" block.
type Feature struct {
	Icon        string      `json:"icon"`
	Title       locale.Text `json:"title"`
	Description locale.Text `json:"description"`
}

// WhyChoosePayload is the decoded shape of the why_choose section.
type WhyChoosePayload struct {
	Features []Feature `json:"features"`
}

func (WhyChoosePayload) Kind() PayloadKind { return KindWhyChoose }

// Achievement is one entry of an achievements block.
type Achievement struct {
	Icon  string      `json:"icon"`
	Value string      `json:"value"`
	Label locale.Text `json:"label"`
}

// AchievementsPayload is the decoded shape of the achievements section.
type AchievementsPayload struct {
	Achievements []Achievement `json:"achievements"`
}

func (AchievementsPayload) Kind() PayloadKind { return KindAchievements }

// StatEntry is one entry of a stats block.
type StatEntry struct {
	Value string      `json:"value"`
	Label locale.Text `json:"label"`
}

// StatsPayload is the decoded shape of the stats section.
type StatsPayload struct {
	Stats []StatEntry `json:"stats"`
}

func (StatsPayload) Kind() PayloadKind { return KindStats }

// OpaquePayload carries structured content whose schema this layer does not
// know, including unparsed raw strings.
type OpaquePayload struct {
	Data locale.Structured
}

func (OpaquePayload) Kind() PayloadKind { return KindOpaque }

// DecodePayload resolves the typed variant for a section's structured
// content. Decoding is best effort: any mismatch degrades to OpaquePayload,
// never to an error, so a malformed payload cannot break rendering.
func DecodePayload(sectionKey string, content locale.Structured) Payload {
	if content.Unparsed() || content.IsZero() {
		return OpaquePayload{Data: content}
	}

	switch sectionKey {
	case KeyWhyChoose:
		var out WhyChoosePayload
		if remarshal(content.Data(), &out) && out.Features != nil {
			return out
		}
	case KeyAchievements:
		var out AchievementsPayload
		if remarshal(content.Data(), &out) && out.Achievements != nil {
			return out
		}
	case KeyStats:
		var out StatsPayload
		if remarshal(content.Data(), &out) && out.Stats != nil {
			return out
		}
	}
	return OpaquePayload{Data: content}
}

func remarshal(src any, dst any) bool {
	data, err := json.Marshal(src)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}
