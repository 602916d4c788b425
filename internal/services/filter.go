package services

import (
	"mistakebook/internal/models"
)

// Filters selects photos by unit membership (OR: any listed unit matches) and
// tag membership (AND: every listed tag must be present). Both filters active
// means both must pass. Empty lists impose no constraint.
type Filters struct {
	Units []string `json:"units"`
	Tags  []string `json:"tags"`
}

// ApplyFilters returns the photos passing the filters, preserving input
// order. Pure: the input slice is not modified and no re-sort happens.
func ApplyFilters(photos []models.Photo, filters Filters) []models.Photo {
	filtered := make([]models.Photo, 0, len(photos))

	for _, photo := range photos {
		if len(filters.Units) > 0 && !photo.Units.ContainsAny(filters.Units) {
			continue
		}
		if len(filters.Tags) > 0 && !photo.Tags.ContainsAll(filters.Tags) {
			continue
		}
		filtered = append(filtered, photo)
	}

	return filtered
}
