package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhishek-0203/neural-thread-couture/internal/cache"
	"github.com/abhishek-0203/neural-thread-couture/internal/dto"
	"github.com/abhishek-0203/neural-thread-couture/internal/geo"
	"github.com/abhishek-0203/neural-thread-couture/internal/httperr"
	"github.com/abhishek-0203/neural-thread-couture/internal/httpresp"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
)

const (
	defaultRadiusKm = 50.0
	nearbyCacheTTL  = 60 * time.Second
)

type NearbyHandler struct {
	search *geo.Search
	cache  *cache.Cache
}

func NewNearbyHandler(search *geo.Search, c *cache.Cache) *NearbyHandler {
	return &NearbyHandler{search: search, cache: c}
}

func (h *NearbyHandler) List(c *gin.Context) {
	userType := c.Query("type")
	if userType != models.UserTypeDesigner && userType != models.UserTypeTailor {
		httperr.BadRequest(c, "invalid_provider_type", "type must be designer or tailor")
		return
	}

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		httperr.BadRequest(c, "invalid_coordinates", "lat and lng are required")
		return
	}

	radius := defaultRadiusKm
	if v := c.Query("radius_km"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil && r > 0 && r <= 500 {
			radius = r
		}
	}

	// Coordinates are rounded into the key so nearby requests from the
	// same area share an entry.
	key := fmt.Sprintf("nearby:%s:%.2f:%.2f:%.0f", userType, lat, lng, radius)

	var providers []dto.NearbyProvider
	if h.cache.GetJSON(c.Request.Context(), key, &providers) {
		httpresp.List(c, providers)
		return
	}

	providers, err := h.search.FindNearbyProviders(c.Request.Context(), userType, lat, lng, radius)
	if err != nil {
		httperr.Internal(c, "nearby_search_failed", "Could not search nearby providers.")
		return
	}

	h.cache.SetJSON(c.Request.Context(), key, providers, nearbyCacheTTL)

	httpresp.List(c, providers)
}
