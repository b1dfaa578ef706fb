package sliders

import "github.com/alqalam/campus-cms/locale"

// Stat list editing follows the same index-addressed contract as the locale
// package's structured lists: append a default-shaped element, remove by
// index, replace an index with an edited copy. Every helper returns a new
// slice and leaves siblings untouched.

// AddStat appends an empty stat entry.
func AddStat(stats []Stat) []Stat {
	out := make([]Stat, 0, len(stats)+1)
	out = append(out, stats...)
	return append(out, Stat{})
}

// RemoveStat drops the entry at index. Out-of-range indexes are a no-op.
func RemoveStat(stats []Stat, index int) []Stat {
	if index < 0 || index >= len(stats) {
		return stats
	}
	out := make([]Stat, 0, len(stats)-1)
	out = append(out, stats[:index]...)
	return append(out, stats[index+1:]...)
}

// SetStatValue replaces the value of the entry at index. Out-of-range indexes
// are a no-op.
func SetStatValue(stats []Stat, index int, value string) []Stat {
	if index < 0 || index >= len(stats) {
		return stats
	}
	out := make([]Stat, len(stats))
	copy(out, stats)
	out[index].Value = value
	return out
}

// SetStatLabel replaces the label text of the entry at index for one locale.
// Out-of-range indexes and unknown locale codes are a no-op.
func SetStatLabel(stats []Stat, index int, code, label string) []Stat {
	if index < 0 || index >= len(stats) {
		return stats
	}
	out := make([]Stat, len(stats))
	copy(out, stats)
	switch code {
	case locale.English:
		out[index].Label.EN = label
	case locale.Arabic:
		out[index].Label.AR = label
	default:
		return stats
	}
	return out
}
