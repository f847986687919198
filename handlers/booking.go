package handlers

import (
	"net/http"

	"seminarly/middleware"
	"seminarly/models"
	"seminarly/services/booking"
	"seminarly/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes seminar reservations.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler books the caller onto a seminar. A multipart "proof"
// file pays by proof of payment; otherwise a payment intent is opened and
// its client secret returned.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		unauthorized(c)
		return
	}

	proof, closer, err := readProof(c)
	if err != nil {
		logger.Warn("invalid proof upload", zap.Error(err))
		badRequest(c, err)
		return
	}
	if closer != nil {
		defer closer.Close()
	}
	if proof != nil && !storage.AllowedMimeType(proof.MimeType) {
		respondError(c, storage.ErrUnsupportedType)
		return
	}

	result, err := h.Service.CreateBooking(c.Request.Context(), principal, c.Param("seminarId"), models.PaymentInput{Proof: proof})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

type statusUpdateRequest struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// UpdateBookingStatusHandler lets an admin confirm, reject or reopen a booking.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	updated, err := h.Service.UpdateBookingStatus(c.Request.Context(), c.Param("id"), req.PaymentStatus)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *BookingHandler) GetMyBookingsHandler(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		unauthorized(c)
		return
	}
	bookings, err := h.Service.ListBookingsForUser(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		unauthorized(c)
		return
	}
	b, err := h.Service.GetBooking(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookingsHandler lists all bookings, filtered by ?status=, ?seminarId= and ?userId=.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	filter := models.BookingFilter{
		UserID:    c.Query("userId"),
		SeminarID: c.Query("seminarId"),
		Status:    models.PaymentStatus(c.Query("status")),
	}
	bookings, err := h.Service.ListBookings(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
