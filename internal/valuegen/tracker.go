package valuegen

import "strings"

// UsageTracker records how often each enumeration member has been emitted
// for a given (element name, enumeration signature) key, so repeated
// generations of the same element cycle through every member before any
// repeats. Owned by the session; Reset restores a clean slate.
type UsageTracker struct {
	counts map[string]map[string]int
}

// NewUsageTracker creates an empty tracker.
func NewUsageTracker() *UsageTracker {
	return &UsageTracker{counts: make(map[string]map[string]int)}
}

// Reset discards all usage counts.
func (t *UsageTracker) Reset() {
	t.counts = make(map[string]map[string]int)
}

// Next selects the least-used member of values for the element, breaking
// ties by declaration order, and records the selection. An empty values
// slice returns "".
func (t *UsageTracker) Next(elementName string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	key := usageKey(elementName, values)
	used := t.counts[key]
	if used == nil {
		used = make(map[string]int, len(values))
		t.counts[key] = used
	}
	selected := values[0]
	for _, value := range values[1:] {
		if used[value] < used[selected] {
			selected = value
		}
	}
	used[selected]++
	return selected
}

// usageKey derives the tracker key from the element name and the
// enumeration signature, so identically-named elements with different value
// sets are tracked independently.
func usageKey(elementName string, values []string) string {
	return elementName + "|" + strings.Join(values, "\x1f")
}
