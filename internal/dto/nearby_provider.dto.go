package dto

type NearbyProvider struct {
	ID                uint     `json:"id"`
	UserID            uint     `json:"user_id"`
	UserType          string   `json:"user_type"`
	Name              string   `json:"name"`
	Location          string   `json:"location"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	Experience        int      `json:"experience"`
	Expertise         []string `json:"expertise"`
	Bio               string   `json:"bio"`
	PortfolioImageURL string   `json:"portfolio_image_url"`
	DistanceKm        float64  `json:"distance_km"`
}
