package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abhishek-0203/neural-thread-couture/internal/httperr"
	"github.com/abhishek-0203/neural-thread-couture/internal/middleware"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
	ucreview "github.com/abhishek-0203/neural-thread-couture/internal/usecase/review"
)

type ReviewHandler struct {
	db       *gorm.DB
	createUC *ucreview.CreateReview
}

func NewReviewHandler(db *gorm.DB, createUC *ucreview.CreateReview) *ReviewHandler {
	return &ReviewHandler{db: db, createUC: createUC}
}

type createReviewRequest struct {
	ReviewedUserID uint   `json:"reviewed_user_id" binding:"required"`
	Rating         int    `json:"rating" binding:"required"`
	Comment        string `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	reviewerID := c.MustGet(middleware.ContextUserID).(uint)

	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	review, err := h.createUC.Execute(c.Request.Context(), ucreview.CreateReviewInput{
		ReviewerID:     reviewerID,
		ReviewedUserID: req.ReviewedUserID,
		Rating:         req.Rating,
		Comment:        req.Comment,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Could not create review.")
			return
		}
		httperr.Internal(c, "review_create_failed", "Could not create review.")
		return
	}

	c.JSON(http.StatusCreated, review)
}

// ListForUser returns the reviews of a provider plus their average
// rating, computed server-side so every client shows the same number.
func (h *ReviewHandler) ListForUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_id", "Invalid user id.")
		return
	}

	var reviews []models.Review
	if err := h.db.
		Where("reviewed_user_id = ?", uint(userID)).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "review_list_failed", "Could not list reviews.")
		return
	}

	var average float64
	if len(reviews) > 0 {
		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		average = float64(sum) / float64(len(reviews))
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":        reviews,
		"average_rating": average,
		"count":          len(reviews),
	})
}
