package services

import (
	"testing"
	"time"

	"github.com/fitstudio/marketplace/models"
	"github.com/google/uuid"
)

func floatPtr(v float64) *float64 { return &v }

func candidate(name string, mutate func(*models.InstructorProfile)) models.InstructorProfile {
	display := name
	profile := models.InstructorProfile{
		UserID:             uuid.New(),
		DisplayName:        &display,
		MarketplaceVisible: true,
		HourlyRate:         50,
		LastActiveAt:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if mutate != nil {
		mutate(&profile)
	}
	return profile
}

func names(results []InstructorResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, *r.DisplayName)
	}
	return out
}

func TestRankCandidatesSpecialtyIntersection(t *testing.T) {
	candidates := []models.InstructorProfile{
		candidate("yogi", func(p *models.InstructorProfile) {
			p.Specialties = []string{"Yoga", "Pilates"}
		}),
		candidate("lifter", func(p *models.InstructorProfile) {
			p.Specialties = []string{"Strength Training"}
		}),
		candidate("unlisted", nil),
	}

	results := rankCandidates(candidates, SearchCriteria{Specialties: []string{"Yoga"}})

	if len(results) != 1 {
		t.Fatalf("got %d results, want 1: %v", len(results), names(results))
	}
	if *results[0].DisplayName != "yogi" {
		t.Errorf("got %q, want yogi", *results[0].DisplayName)
	}
}

func TestRankCandidatesLanguageIntersection(t *testing.T) {
	candidates := []models.InstructorProfile{
		candidate("bilingual", func(p *models.InstructorProfile) {
			p.Languages = []string{"English", "Spanish"}
		}),
		candidate("english-only", func(p *models.InstructorProfile) {
			p.Languages = []string{"English"}
		}),
	}

	results := rankCandidates(candidates, SearchCriteria{Languages: []string{"spanish"}})

	if len(results) != 1 || *results[0].DisplayName != "bilingual" {
		t.Fatalf("got %v, want [bilingual]", names(results))
	}
}

func TestRankCandidatesNoFilterKeepsAll(t *testing.T) {
	candidates := []models.InstructorProfile{
		candidate("a", nil),
		candidate("b", func(p *models.InstructorProfile) { p.Specialties = []string{"Yoga"} }),
	}

	results := rankCandidates(candidates, SearchCriteria{})
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
}

func TestRankCandidatesActivitySort(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	candidates := []models.InstructorProfile{
		candidate("stale", func(p *models.InstructorProfile) {
			p.LastActiveAt = base.Add(-48 * time.Hour)
		}),
		candidate("fresh-expensive", func(p *models.InstructorProfile) {
			p.LastActiveAt = base
			p.HourlyRate = 90
		}),
		candidate("fresh-cheap", func(p *models.InstructorProfile) {
			p.LastActiveAt = base
			p.HourlyRate = 40
		}),
	}

	results := rankCandidates(candidates, SearchCriteria{})

	want := []string{"fresh-cheap", "fresh-expensive", "stale"}
	got := names(results)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("activity sort order = %v, want %v", got, want)
		}
	}
}

func TestRankCandidatesGeoSortAndExclusion(t *testing.T) {
	// Search centered on downtown Manhattan.
	criteria := SearchCriteria{
		Lat:      floatPtr(40.7128),
		Lng:      floatPtr(-74.0060),
		RadiusKm: floatPtr(20),
	}

	candidates := []models.InstructorProfile{
		candidate("brooklyn", func(p *models.InstructorProfile) {
			p.Lat = floatPtr(40.6782)
			p.Lng = floatPtr(-73.9442)
		}),
		candidate("midtown", func(p *models.InstructorProfile) {
			p.Lat = floatPtr(40.7549)
			p.Lng = floatPtr(-73.9840)
		}),
		candidate("philadelphia", func(p *models.InstructorProfile) {
			p.Lat = floatPtr(39.9526)
			p.Lng = floatPtr(-75.1652)
		}),
		candidate("no-coords", nil),
	}

	results := rankCandidates(candidates, criteria)

	want := []string{"midtown", "brooklyn"}
	got := names(results)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("distance sort order = %v, want %v", got, want)
		}
	}
	for _, r := range results {
		if r.DistanceKm == nil {
			t.Errorf("%s missing distance annotation", *r.DisplayName)
		} else if *r.DistanceKm > 20 {
			t.Errorf("%s is %.1f km away, outside the 20 km radius", *r.DisplayName, *r.DistanceKm)
		}
	}
}

func TestSetsOverlap(t *testing.T) {
	cases := []struct {
		have []string
		want []string
		keep bool
	}{
		{nil, nil, true},
		{nil, []string{"Yoga"}, false},
		{[]string{"Yoga"}, nil, true},
		{[]string{"Yoga", "Pilates"}, []string{"Yoga"}, true},
		{[]string{"pilates"}, []string{"Pilates"}, true},
		{[]string{"Boxing"}, []string{"Yoga", "Pilates"}, false},
	}

	for _, tc := range cases {
		if got := setsOverlap(tc.have, tc.want); got != tc.keep {
			t.Errorf("setsOverlap(%v, %v) = %v, want %v", tc.have, tc.want, got, tc.keep)
		}
	}
}
