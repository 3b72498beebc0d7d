package geo

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/abhishek-0203/neural-thread-couture/internal/dto"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
)

// Search answers "which providers are within N km of this point",
// replacing the geosearch procedures the original app called remotely.
type Search struct {
	db *gorm.DB
}

func NewSearch(db *gorm.DB) *Search {
	return &Search{db: db}
}

// FindNearbyProviders prefilters candidates with a bounding box in SQL,
// then ranks the survivors by exact Haversine distance.
func (s *Search) FindNearbyProviders(
	ctx context.Context,
	userType string,
	lat, lng, radiusKm float64,
) ([]dto.NearbyProvider, error) {

	// One degree of latitude is ~111 km; longitude degrees shrink with
	// latitude but the box only has to be conservative, not tight.
	latDelta := radiusKm / 111.0
	lngDelta := latDelta * 2

	var candidates []models.Profile
	if err := s.db.WithContext(ctx).
		Where("user_type = ?", userType).
		Where("latitude IS NOT NULL AND longitude IS NOT NULL").
		Where("latitude BETWEEN ? AND ?", lat-latDelta, lat+latDelta).
		Where("longitude BETWEEN ? AND ?", lng-lngDelta, lng+lngDelta).
		Find(&candidates).Error; err != nil {
		return nil, err
	}

	return RankByDistance(candidates, lat, lng, radiusKm), nil
}

// RankByDistance filters profiles to the radius and sorts them nearest
// first, attaching distance_km to each row.
func RankByDistance(profiles []models.Profile, lat, lng, radiusKm float64) []dto.NearbyProvider {
	out := make([]dto.NearbyProvider, 0, len(profiles))

	for i := range profiles {
		p := &profiles[i]
		if p.Latitude == nil || p.Longitude == nil {
			continue
		}

		d := Haversine(lat, lng, *p.Latitude, *p.Longitude)
		if d > radiusKm {
			continue
		}

		experience := 0
		if p.Experience != nil {
			experience = *p.Experience
		}

		out = append(out, dto.NearbyProvider{
			ID:                p.ID,
			UserID:            p.UserID,
			UserType:          p.UserType,
			Name:              p.Name,
			Location:          p.Location,
			Latitude:          *p.Latitude,
			Longitude:         *p.Longitude,
			Experience:        experience,
			Expertise:         p.Expertise,
			Bio:               p.Bio,
			PortfolioImageURL: p.PortfolioImageURL,
			DistanceKm:        d,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})

	return out
}
