package model

import (
	"slices"
)

// MergeCategories returns the sorted, deduplicated union of the existing
// category set and the newly extracted names. The taxonomy is persisted as a
// full overwrite of this result; it grows monotonically and is never shrunk
// by ingestion.
func MergeCategories(existing, added []string) []string {
	seen := make(map[string]bool, len(existing)+len(added))
	merged := make([]string, 0, len(existing)+len(added))
	for _, c := range existing {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		merged = append(merged, c)
	}
	for _, c := range added {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		merged = append(merged, c)
	}
	slices.Sort(merged)
	return merged
}
