package handlers

import (
	"errors"
	"net/http"

	"seminarly/services/booking"
	"seminarly/services/payment"
	"seminarly/services/seminar"
	"seminarly/services/storage"
	"seminarly/services/user"
	"seminarly/utils"

	"github.com/gin-gonic/gin"
)

var bookingStatus = map[booking.ErrorKind]int{
	booking.KindNotFound:          http.StatusNotFound,
	booking.KindCapacityExhausted: http.StatusConflict,
	booking.KindConflict:          http.StatusConflict,
	booking.KindInvalidStatus:     http.StatusBadRequest,
	booking.KindPaymentGateway:    http.StatusBadGateway,
	booking.KindImageStore:        http.StatusBadGateway,
	booking.KindStorage:           http.StatusInternalServerError,
}

// respondError maps service errors to HTTP responses.
func respondError(c *gin.Context, err error) {
	var be *booking.BookingError
	var ve user.ValidationError

	switch {
	case errors.As(err, &be):
		status := bookingStatus[be.Kind]
		if status == 0 {
			status = http.StatusInternalServerError
		}
		details := ""
		if status >= http.StatusInternalServerError || status == http.StatusBadGateway {
			if be.Err != nil {
				details = be.Err.Error()
			}
		}
		c.Set("errorKind", string(be.Kind))
		utils.JSONError(c, status, be.Message, details)

	case errors.As(err, &ve):
		utils.JSONError(c, http.StatusBadRequest, ve.Message, "")
	case errors.Is(err, user.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, user.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
	case errors.Is(err, user.ErrUserNotFound), errors.Is(err, seminar.ErrSeminarNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.Is(err, seminar.ErrInvalidWindow):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, seminar.ErrSeminarHasBookings):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, storage.ErrUnsupportedType):
		utils.JSONError(c, http.StatusUnsupportedMediaType, err.Error(), "")
	case errors.Is(err, storage.ErrNotConfigured), errors.Is(err, payment.ErrNotConfigured):
		utils.JSONError(c, http.StatusServiceUnavailable, err.Error(), "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
}

func unauthorized(c *gin.Context) {
	utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
}
