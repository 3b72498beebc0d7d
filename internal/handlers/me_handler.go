package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abhishek-0203/neural-thread-couture/internal/middleware"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.Preload("Profile").First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
		"profile": user.Profile,
	})
}

// UpdateMeRequest covers the mutable profile fields. user_type is
// deliberately absent: the role is fixed at sign-up.
type UpdateMeRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Age      *int    `json:"age"`

	Experience        *int      `json:"experience"`
	Expertise         *[]string `json:"expertise"`
	Bio               *string   `json:"bio"`
	PortfolioImageURL *string   `json:"portfolio_image_url"`

	Gender           *string   `json:"gender"`
	Height           *int      `json:"height"`
	Weight           *int      `json:"weight"`
	Waist            *int      `json:"waist"`
	BodyShape        *string   `json:"body_shape"`
	FashionInterests *[]string `json:"fashion_interests"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}

	var profile models.Profile
	if err := h.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile_not_found"})
		return
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Experience != nil {
		profile.Experience = req.Experience
	}
	if req.Expertise != nil {
		profile.Expertise = *req.Expertise
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.PortfolioImageURL != nil {
		profile.PortfolioImageURL = *req.PortfolioImageURL
	}
	if req.Gender != nil {
		profile.Gender = req.Gender
	}
	if req.Height != nil {
		profile.Height = req.Height
	}
	if req.Weight != nil {
		profile.Weight = req.Weight
	}
	if req.Waist != nil {
		profile.Waist = req.Waist
	}
	if req.BodyShape != nil {
		profile.BodyShape = req.BodyShape
	}
	if req.FashionInterests != nil {
		profile.FashionInterests = *req.FashionInterests
	}
	if req.Latitude != nil {
		profile.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		profile.Longitude = req.Longitude
	}

	if err := h.db.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
