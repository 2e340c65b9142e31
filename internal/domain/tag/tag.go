package tag

import "strings"

// Labels are free text entered in the content studio, so the same tag shows
// up with drifting casing and stray whitespace across documents. All
// comparisons go through Normalize; display keeps the first-seen original.

// Normalize lowercases a label, trims it and collapses internal runs of
// whitespace to a single space. Normalizing twice yields the same result.
func Normalize(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(label), " "))
}

// Dedupe returns the labels with case/whitespace duplicates removed,
// preserving order and the original casing of the first occurrence.
// Labels that normalize to the empty string are dropped.
func Dedupe(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		key := Normalize(label)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(label))
	}
	return out
}

// Contains reports whether any of the labels matches selected under
// normalization.
func Contains(labels []string, selected string) bool {
	key := Normalize(selected)
	for _, label := range labels {
		if Normalize(label) == key {
			return true
		}
	}
	return false
}
