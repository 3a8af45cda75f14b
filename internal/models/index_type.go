package models

import "strings"

type IndexType string

const (
	IndexNDVI IndexType = "NDVI"
	IndexNDWI IndexType = "NDWI"
)

// TrackedIndexTypes returns the index types the scheduler ingests, in the
// stable order they are processed within a run.
func TrackedIndexTypes() []IndexType {
	return []IndexType{IndexNDVI, IndexNDWI}
}

// ParseIndexType normalizes a user-supplied index type string.
func ParseIndexType(s string) (IndexType, bool) {
	switch IndexType(strings.ToUpper(strings.TrimSpace(s))) {
	case IndexNDVI:
		return IndexNDVI, true
	case IndexNDWI:
		return IndexNDWI, true
	}
	return "", false
}

func (i IndexType) String() string {
	return string(i)
}
