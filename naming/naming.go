// Package naming maps between original image names and their derived (resized) siblings.
package naming

import (
	"path/filepath"
	"strings"
)

// Marker is the default stem marker of a derived image.
const Marker = "_resized"

// SplitName splits a base filename into stem and extension (with dot).
func SplitName(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	stem = strings.TrimSuffix(name, ext)
	return
}

// Mapper converts filenames in both directions.
//
// Original is not a true inverse of Derived: a stem that already contains
// the marker loses it too, e.g. "a_resized_b.png" -> "a_b.png".
type Mapper struct {
	Marker string
}

// NewMapper returns a Mapper, an empty marker means the default one.
func NewMapper(marker string) Mapper {
	if marker == "" {
		marker = Marker
	}
	return Mapper{Marker: marker}
}

// Derived appends the marker to the end of the stem.
func (m Mapper) Derived(name string) string {
	stem, ext := SplitName(name)
	return stem + m.Marker + ext
}

// Original removes every occurrence of the marker from the stem.
func (m Mapper) Original(name string) string {
	stem, ext := SplitName(name)
	return strings.ReplaceAll(stem, m.Marker, "") + ext
}

// IsDerived reports whether the stem of name carries the marker.
func (m Mapper) IsDerived(name string) bool {
	stem, _ := SplitName(name)
	return strings.Contains(stem, m.Marker)
}
