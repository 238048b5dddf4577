package availability

import (
	"fmt"
	"hash/fnv"

	"freecast/models"
	"freecast/services/platforms"
)

// Source resolves which platforms a content item is available on. Real
// licensing data does not exist for this product, so the production
// implementation synthesizes a plausible subset; the interface keeps the
// synthesis swappable once a real data feed shows up.
type Source interface {
	Resolve(contentID int64, contentType models.ContentType, platformFilter string) []models.PlatformAvailability
}

const (
	minPlatforms = 2
	maxPlatforms = 5
)

var qualityTiers = []string{"HD", "FullHD", "4K"}

// RegistrySource synthesizes availability from the platform registry. The
// selection is a pure function of (contentID, contentType) so repeated
// requests for the same item agree with each other.
type RegistrySource struct {
	registry *platforms.Registry
}

func NewRegistrySource(registry *platforms.Registry) *RegistrySource {
	return &RegistrySource{registry: registry}
}

// Resolve returns the synthesized availability entries for one item.
//
// With a platform filter: exactly one entry when the filter is eligible for
// the content type, otherwise nothing (the orchestrator drops the item).
// Without a filter: a deterministic subset of 2..5 eligible platforms,
// capped by how many are eligible at all.
func (s *RegistrySource) Resolve(contentID int64, contentType models.ContentType, platformFilter string) []models.PlatformAvailability {
	eligible := s.registry.EligibleFor(contentType)
	if len(eligible) == 0 {
		return nil
	}

	if platformFilter != "" {
		for _, key := range eligible {
			if key == platformFilter {
				return []models.PlatformAvailability{s.entry(key, contentID, contentType)}
			}
		}
		return nil
	}

	h := itemHash(contentID, contentType)
	count := subsetSize(h, len(eligible))
	offset := int(h % uint64(len(eligible)))

	entries := make([]models.PlatformAvailability, 0, count)
	for i := 0; i < count; i++ {
		key := eligible[(offset+i)%len(eligible)]
		entries = append(entries, s.entry(key, contentID, contentType))
	}
	return entries
}

func (s *RegistrySource) entry(key string, contentID int64, contentType models.ContentType) models.PlatformAvailability {
	desc, _ := s.registry.Lookup(key)
	return models.PlatformAvailability{
		Platform:    key,
		Name:        desc.Name,
		URL:         fmt.Sprintf("%s/%s/%d", desc.BaseURL, contentType, contentID),
		Quality:     qualityFor(contentID, key),
		Cost:        "Free",
		Description: desc.Description,
		CastSupport: desc.CastSupport,
	}
}

func itemHash(contentID int64, contentType models.ContentType) uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%s", contentID, contentType)
	return h.Sum64()
}

// subsetSize picks a platform count in [minPlatforms, maxPlatforms], capped
// by the number of eligible platforms.
func subsetSize(h uint64, eligible int) int {
	hi := maxPlatforms
	if eligible < hi {
		hi = eligible
	}
	lo := minPlatforms
	if eligible < lo {
		lo = eligible
	}
	if hi <= lo {
		return lo
	}
	return lo + int((h>>8)%uint64(hi-lo+1))
}

func qualityFor(contentID int64, platformKey string) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%d:%s", contentID, platformKey)
	return qualityTiers[h.Sum64()%uint64(len(qualityTiers))]
}
