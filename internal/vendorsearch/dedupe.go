package vendorsearch

import (
	"strings"

	"github.com/sfadda-dotcom/wedding-planner-platform/internal/models"
)

// Dedupe merges candidates from multiple sources. The key is the
// case-insensitive (name, location) pair; the highest-rated duplicate wins,
// first seen wins ties. Output order follows the first occurrence of each
// surviving key. Running Dedupe on its own output is a no-op.
func Dedupe(candidates []models.Vendor) []models.Vendor {
	type slot struct {
		index  int
		vendor models.Vendor
	}

	best := make(map[string]slot, len(candidates))
	order := make([]string, 0, len(candidates))

	for _, v := range candidates {
		key := strings.ToLower(v.Name) + "-" + strings.ToLower(v.Location)
		existing, seen := best[key]
		if !seen {
			best[key] = slot{index: len(order), vendor: v}
			order = append(order, key)
			continue
		}
		if v.Rating > existing.vendor.Rating {
			best[key] = slot{index: existing.index, vendor: v}
		}
	}

	out := make([]models.Vendor, len(order))
	for _, key := range order {
		s := best[key]
		out[s.index] = s.vendor
	}
	return out
}
