package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abhishek-0203/neural-thread-couture/internal/httperr"
	"github.com/abhishek-0203/neural-thread-couture/internal/middleware"
	"github.com/abhishek-0203/neural-thread-couture/internal/models"
	ucbooking "github.com/abhishek-0203/neural-thread-couture/internal/usecase/booking"
)

type BookingHandler struct {
	db *gorm.DB

	createUC   *ucbooking.CreateBooking
	confirmUC  *ucbooking.ConfirmBooking
	cancelUC   *ucbooking.CancelBooking
	completeUC *ucbooking.CompleteBooking
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *ucbooking.CreateBooking,
	confirmUC *ucbooking.ConfirmBooking,
	cancelUC *ucbooking.CancelBooking,
	completeUC *ucbooking.CompleteBooking,
) *BookingHandler {
	return &BookingHandler{
		db:         db,
		createUC:   createUC,
		confirmUC:  confirmUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
	}
}

// ======================================================
// CREATE (customer)
// ======================================================

type createBookingRequest struct {
	ProviderID  uint   `json:"provider_id" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	Date        string `json:"booking_date" binding:"required"` // 2006-01-02
	Time        string `json:"booking_time" binding:"required"` // 15:04
	Notes       string `json:"notes"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucbooking.CreateBookingInput{
		CustomerID:  customerID,
		ProviderID:  req.ProviderID,
		ServiceType: req.ServiceType,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Could not create booking.")
			return
		}
		httperr.Internal(c, "booking_create_failed", "Could not create booking.")
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// LIST (both roles)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.Model(&models.Booking{})

	switch c.Query("as") {
	case "provider":
		q = q.Where("provider_id = ?", userID)
	case "customer":
		q = q.Where("customer_id = ?", userID)
	default:
		q = q.Where("customer_id = ? OR provider_id = ?", userID, userID)
	}

	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := q.Order("booking_date DESC, booking_time DESC").Find(&bookings).Error; err != nil {
		httperr.Internal(c, "booking_list_failed", "Could not list bookings.")
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, func(userID, bookingID uint) (*models.Booking, error) {
		return h.confirmUC.Execute(c.Request.Context(), userID, bookingID)
	})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, func(userID, bookingID uint) (*models.Booking, error) {
		return h.cancelUC.Execute(c.Request.Context(), userID, bookingID)
	})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, func(userID, bookingID uint) (*models.Booking, error) {
		return h.completeUC.Execute(c.Request.Context(), userID, bookingID)
	})
}

func (h *BookingHandler) transition(
	c *gin.Context,
	run func(userID, bookingID uint) (*models.Booking, error),
) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := run(userID, uint(bookingID))
	if err != nil {
		if httperr.IsBusiness(err, "booking_not_found") {
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
			return
		}
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Invalid booking transition.")
			return
		}
		httperr.Internal(c, "booking_update_failed", "Could not update booking.")
		return
	}

	c.JSON(http.StatusOK, b)
}
