package availability

import (
	"reflect"
	"testing"

	"freecast/models"
	"freecast/services/platforms"
)

var bothTypes = []models.ContentType{models.ContentTypeMovie, models.ContentTypeSeries}

func testRegistry() *platforms.Registry {
	return platforms.New([]platforms.Entry{
		{Key: "alpha", Descriptor: models.PlatformDescriptor{
			Name: "Alpha", BaseURL: "https://alpha.test", ContentTypes: bothTypes,
			CastSupport: models.CastSupport{Chromecast: true},
		}},
		{Key: "beta", Descriptor: models.PlatformDescriptor{
			Name: "Beta", BaseURL: "https://beta.test",
			ContentTypes: []models.ContentType{models.ContentTypeMovie},
			CastSupport:  models.CastSupport{Airplay: true},
		}},
		{Key: "gamma", Descriptor: models.PlatformDescriptor{
			Name: "Gamma", BaseURL: "https://gamma.test",
			ContentTypes: []models.ContentType{models.ContentTypeSeries},
			CastSupport:  models.CastSupport{DLNA: true},
		}},
		{Key: "delta", Descriptor: models.PlatformDescriptor{
			Name: "Delta", BaseURL: "https://delta.test", ContentTypes: bothTypes,
		}},
		{Key: "epsilon", Descriptor: models.PlatformDescriptor{
			Name: "Epsilon", BaseURL: "https://epsilon.test", ContentTypes: bothTypes,
		}},
	})
}

func TestResolveDeterministic(t *testing.T) {
	s := NewRegistrySource(testRegistry())
	first := s.Resolve(603, models.ContentTypeMovie, "")
	second := s.Resolve(603, models.ContentTypeMovie, "")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolution not deterministic:\n%v\n%v", first, second)
	}
}

func TestResolveSubsetBounds(t *testing.T) {
	s := NewRegistrySource(testRegistry())
	eligible := map[string]bool{"alpha": true, "beta": true, "delta": true, "epsilon": true}

	for id := int64(1); id <= 50; id++ {
		entries := s.Resolve(id, models.ContentTypeMovie, "")
		if len(entries) < 2 || len(entries) > 4 {
			t.Fatalf("id %d: got %d platforms, want 2..4 (4 eligible)", id, len(entries))
		}
		seen := map[string]bool{}
		for _, e := range entries {
			if !eligible[e.Platform] {
				t.Fatalf("id %d: platform %s not eligible for movies", id, e.Platform)
			}
			if seen[e.Platform] {
				t.Fatalf("id %d: platform %s selected twice", id, e.Platform)
			}
			seen[e.Platform] = true
		}
	}
}

func TestResolveQualityTiers(t *testing.T) {
	s := NewRegistrySource(testRegistry())
	valid := map[string]bool{"HD": true, "FullHD": true, "4K": true}
	for id := int64(1); id <= 20; id++ {
		for _, e := range s.Resolve(id, models.ContentTypeSeries, "") {
			if !valid[e.Quality] {
				t.Fatalf("unexpected quality tier %q", e.Quality)
			}
			if e.Cost != "Free" {
				t.Fatalf("unexpected cost label %q", e.Cost)
			}
		}
	}
}

func TestResolveWithFilter(t *testing.T) {
	s := NewRegistrySource(testRegistry())

	entries := s.Resolve(42, models.ContentTypeMovie, "beta")
	if len(entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(entries))
	}
	if entries[0].Platform != "beta" {
		t.Fatalf("expected beta, got %s", entries[0].Platform)
	}
	if entries[0].URL != "https://beta.test/movie/42" {
		t.Fatalf("unexpected playback url: %s", entries[0].URL)
	}
}

func TestResolveFilterNotEligible(t *testing.T) {
	s := NewRegistrySource(testRegistry())

	// beta is movie-only; filtering series by it yields nothing
	if entries := s.Resolve(42, models.ContentTypeSeries, "beta"); len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}

	// unknown keys behave the same
	if entries := s.Resolve(42, models.ContentTypeMovie, "nope"); len(entries) != 0 {
		t.Fatalf("expected no entries for unknown filter, got %d", len(entries))
	}
}

func TestResolveNoEligiblePlatforms(t *testing.T) {
	movieOnly := platforms.New([]platforms.Entry{
		{Key: "solo", Descriptor: models.PlatformDescriptor{
			Name: "Solo", BaseURL: "https://solo.test",
			ContentTypes: []models.ContentType{models.ContentTypeMovie},
		}},
	})
	s := NewRegistrySource(movieOnly)

	if entries := s.Resolve(7, models.ContentTypeSeries, ""); len(entries) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(entries))
	}
	if entries := s.Resolve(7, models.ContentTypeSeries, "solo"); len(entries) != 0 {
		t.Fatalf("expected empty result with filter, got %d entries", len(entries))
	}
}

func TestResolveSinglePlatformRegistry(t *testing.T) {
	solo := platforms.New([]platforms.Entry{
		{Key: "solo", Descriptor: models.PlatformDescriptor{
			Name: "Solo", BaseURL: "https://solo.test", ContentTypes: bothTypes,
		}},
	})
	s := NewRegistrySource(solo)

	entries := s.Resolve(7, models.ContentTypeMovie, "")
	if len(entries) != 1 {
		t.Fatalf("expected the single eligible platform, got %d entries", len(entries))
	}
}
