package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abhishek-0203/neural-thread-couture/internal/httpresp"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// ======================================================
// LIST / BROWSE
// ======================================================
func (h *ProfileHandler) List(c *gin.Context) {
	userType := c.Query("type")
	location := strings.ToLower(strings.TrimSpace(c.Query("location")))
	expertise := strings.ToLower(strings.TrimSpace(c.Query("expertise")))

	q := h.db.Model(&models.Profile{})

	if userType != "" {
		q = q.Where("user_type = ?", userType)
	} else {
		// Browsing defaults to providers; customer profiles are not a
		// public listing.
		q = q.Where("user_type IN ?", []string{models.UserTypeDesigner, models.UserTypeTailor})
	}

	if location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+location+"%")
	}

	var profiles []models.Profile
	if err := q.Order("created_at DESC").Find(&profiles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_profiles"})
		return
	}

	// Expertise lives in a JSON column; the tag filter is applied here
	// rather than in SQL.
	if expertise != "" {
		filtered := profiles[:0]
		for _, p := range profiles {
			for _, tag := range p.Expertise {
				if strings.ToLower(tag) == expertise {
					filtered = append(filtered, p)
					break
				}
			}
		}
		profiles = filtered
	}

	httpresp.List(c, profiles)
}

// ======================================================
// GET ONE (public provider page)
// ======================================================
func (h *ProfileHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_profile_id"})
		return
	}

	var profile models.Profile
	if err := h.db.First(&profile, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile_not_found"})
		return
	}

	httpresp.OK(c, profile)
}
