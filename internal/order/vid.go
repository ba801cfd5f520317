package order

import (
	"strings"

	"github.com/google/uuid"
)

// suspectPrefixes marks variant ids written by older import paths that
// the partner no longer honors. The list is inferred from observed order
// rejections, not from any documented contract; treat the live catalog as
// the source of truth and this check only as a cheap first pass.
var suspectPrefixes = []string{
	"auto_",
	"tmp_",
	"legacy-",
}

// ValidVariantID reports whether a variant id has a shape the partner
// currently issues: purely numeric or UUID-shaped.
func ValidVariantID(vid string) bool {
	if vid == "" {
		return false
	}
	if isNumeric(vid) {
		return true
	}
	_, err := uuid.Parse(vid)
	return err == nil
}

// SuspectVariantID reports whether a stored variant id must not be
// trusted at face value and requires re-resolution from the live catalog.
func SuspectVariantID(vid string) bool {
	if strings.Contains(vid, "_") {
		return true
	}
	for _, prefix := range suspectPrefixes {
		if strings.HasPrefix(vid, prefix) {
			return true
		}
	}
	return !ValidVariantID(vid)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
