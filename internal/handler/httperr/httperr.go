package httperr

import (
	"errors"
	"net/http"

	"creator-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, "", msg, detail)
}

func abort(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target  error
	status  int
	code    string
	message string
}

// Order matters: a payment failure also carries the funds error that caused
// it, so PaymentFailed has to be matched first.
var mappings = []mapping{
	{errs.ErrPaymentFailed, http.StatusPaymentRequired, "PAYMENT_FAILED", "Payment failed"},
	{errs.ErrUnauthorized, http.StatusForbidden, "UNAUTHORIZED", "Not allowed"},
	{errs.ErrInvalidIdentity, http.StatusBadRequest, "INVALID_IDENTITY", "Invalid identity"},
	{errs.ErrInvalidRate, http.StatusBadRequest, "INVALID_RATE", "Invalid rate"},
	{errs.ErrInvalidMetadata, http.StatusBadRequest, "INVALID_METADATA", "Invalid metadata URI"},
	{errs.ErrInvalidAmount, http.StatusBadRequest, "INVALID_AMOUNT", "Invalid amount"},
	{errs.ErrInvalidTimeWindow, http.StatusBadRequest, "INVALID_TIME_WINDOW", "Invalid time window"},
	{errs.ErrSelfBookingNotAllowed, http.StatusBadRequest, "SELF_BOOKING_NOT_ALLOWED", "Creators cannot book themselves"},
	{errs.ErrCreatorNotFound, http.StatusNotFound, "CREATOR_NOT_FOUND", "Creator not found"},
	{errs.ErrNotRegistered, http.StatusNotFound, "NOT_REGISTERED", "Creator not registered"},
	{errs.ErrNotFound, http.StatusNotFound, "NOT_FOUND", "Not found"},
	{errs.ErrAlreadyRegistered, http.StatusConflict, "ALREADY_REGISTERED", "Creator already registered"},
	{errs.ErrNoOp, http.StatusConflict, "NO_OP", "Value unchanged"},
	{errs.ErrInsufficientFunds, http.StatusPaymentRequired, "INSUFFICIENT_FUNDS", "Insufficient funds"},
	{errs.ErrIdentifierSpaceExhausted, http.StatusServiceUnavailable, "ID_SPACE_EXHAUSTED", "Booking identifiers exhausted"},
}

// AbortWithDomainError maps a usecase error onto its HTTP status. Unknown
// errors become 500 with fallback as the message.
func AbortWithDomainError(c *gin.Context, err error, fallback string) {
	for _, m := range mappings {
		if errs.Is(err, m.target) {
			abort(c, m.status, err, m.code, m.message, nil)
			return
		}
	}
	abort(c, http.StatusInternalServerError, err, "INTERNAL", fallback, nil)
}
