package services

import (
	"sort"
	"strings"

	"github.com/fitstudio/marketplace/database"
	"github.com/fitstudio/marketplace/models"
	"github.com/fitstudio/marketplace/utils"
)

// Hard cap on candidates pulled from the database before in-memory filtering.
const directoryCandidateLimit = 200

type SearchCriteria struct {
	Lat      *float64
	Lng      *float64
	RadiusKm *float64

	MinRate  *float64
	MaxRate  *float64
	Verified *bool
	Remote   *bool

	Specialties []string
	Languages   []string
}

func (sc SearchCriteria) hasGeo() bool {
	return sc.Lat != nil && sc.Lng != nil && sc.RadiusKm != nil
}

type InstructorResult struct {
	models.InstructorProfile
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// SearchInstructors queries visible instructors with every supplied
// equality/range filter, then applies specialty/language intersection and
// geo ranking in memory. Never mutates backing data.
func SearchInstructors(criteria SearchCriteria) ([]InstructorResult, error) {
	query := database.DB.Preload("User").Where("marketplace_visible = ?", true)

	if criteria.MinRate != nil {
		query = query.Where("hourly_rate >= ?", *criteria.MinRate)
	}
	if criteria.MaxRate != nil {
		query = query.Where("hourly_rate <= ?", *criteria.MaxRate)
	}
	if criteria.Verified != nil {
		query = query.Where("verified = ?", *criteria.Verified)
	}
	if criteria.Remote != nil {
		query = query.Where("remote_available = ?", *criteria.Remote)
	}
	if criteria.hasGeo() {
		// Coarse, over-inclusive band; the exact haversine pass runs below.
		minLat, maxLat := utils.LatitudeRange(*criteria.Lat, utils.KmToMiles(*criteria.RadiusKm))
		query = query.Where("lat BETWEEN ? AND ?", minLat, maxLat)
	}

	var candidates []models.InstructorProfile
	if err := query.Limit(directoryCandidateLimit).Find(&candidates).Error; err != nil {
		return nil, err
	}

	return rankCandidates(candidates, criteria), nil
}

// rankCandidates is the pure half of the search: secondary filters plus
// ordering over an already-fetched candidate set.
func rankCandidates(candidates []models.InstructorProfile, criteria SearchCriteria) []InstructorResult {
	results := make([]InstructorResult, 0, len(candidates))

	for _, candidate := range candidates {
		if !setsOverlap(candidate.Specialties, criteria.Specialties) {
			continue
		}
		if !setsOverlap(candidate.Languages, criteria.Languages) {
			continue
		}

		result := InstructorResult{InstructorProfile: candidate}

		if criteria.hasGeo() {
			// Missing coordinates count as infinitely far away.
			if candidate.Lat == nil || candidate.Lng == nil {
				continue
			}
			distance := utils.HaversineKm(*criteria.Lat, *criteria.Lng, *candidate.Lat, *candidate.Lng)
			if distance > *criteria.RadiusKm {
				continue
			}
			result.DistanceKm = &distance
		}

		results = append(results, result)
	}

	if criteria.hasGeo() {
		sort.SliceStable(results, func(i, j int) bool {
			return *results[i].DistanceKm < *results[j].DistanceKm
		})
	} else {
		sort.SliceStable(results, func(i, j int) bool {
			if !results[i].LastActiveAt.Equal(results[j].LastActiveAt) {
				return results[i].LastActiveAt.After(results[j].LastActiveAt)
			}
			return results[i].HourlyRate < results[j].HourlyRate
		})
	}

	return results
}

// setsOverlap keeps a candidate when its set intersects the requested set
// (OR semantics). An empty request excludes nothing.
func setsOverlap(have, want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}
