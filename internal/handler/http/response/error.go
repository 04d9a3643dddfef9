package response

import (
	"errors"
	"net/http"

	"github.com/brickmart/console-backend-go/internal/domain/attendance"
	"github.com/brickmart/console-backend-go/internal/domain/auth"
	"github.com/brickmart/console-backend-go/internal/domain/campaign"
	"github.com/brickmart/console-backend-go/internal/domain/catalog"
	"github.com/brickmart/console-backend-go/internal/domain/customer"
	"github.com/brickmart/console-backend-go/internal/domain/order"
	"github.com/brickmart/console-backend-go/internal/domain/salary"
	"github.com/brickmart/console-backend-go/internal/domain/ticket"
	"github.com/brickmart/console-backend-go/internal/domain/user"
	"github.com/brickmart/console-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrOAuthEmailUnknown):
		Forbidden(w, "No account exists for this Google identity")

	// Account domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Administrator access required")
	case errors.Is(err, user.ErrCannotDeleteSelf):
		Conflict(w, "Cannot delete own account")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in for this date")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Salary domain errors
	case errors.Is(err, salary.ErrSalaryRecordNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrSalaryAlreadyPaid):
		Conflict(w, "Salary record is already paid")
	case errors.Is(err, salary.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Customer domain errors
	case errors.Is(err, customer.ErrCustomerNotFound):
		NotFound(w, "Customer not found")

	// Catalog domain errors
	case errors.Is(err, catalog.ErrCategoryNotFound):
		NotFound(w, "Category not found")
	case errors.Is(err, catalog.ErrCategoryNameExists):
		Conflict(w, "Category name already exists")
	case errors.Is(err, catalog.ErrProductNotFound):
		NotFound(w, "Product not found")
	case errors.Is(err, catalog.ErrVariantNotFound):
		NotFound(w, "Product variant not found")
	case errors.Is(err, catalog.ErrSKUExists):
		Conflict(w, "SKU already exists")

	// Order domain errors
	case errors.Is(err, order.ErrOrderNotFound):
		NotFound(w, "Order not found")
	case errors.Is(err, order.ErrEmptyOrder):
		BadRequest(w, "Order must contain at least one item", nil)
	case errors.Is(err, order.ErrInvalidStatus):
		BadRequest(w, "Invalid order status", nil)
	case errors.Is(err, order.ErrInsufficientStock):
		Conflict(w, err.Error())
	case errors.Is(err, order.ErrOrderNumberExists):
		Conflict(w, "Order number already exists")

	// Campaign domain errors
	case errors.Is(err, campaign.ErrCampaignNotFound):
		NotFound(w, "Campaign not found")

	// Ticket domain errors
	case errors.Is(err, ticket.ErrTicketNotFound):
		NotFound(w, "Support ticket not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
