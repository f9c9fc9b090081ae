package response

import (
	"errors"
	"net/http"

	"github.com/reboot-ai/crm-backend-go/internal/domain/attendance"
	"github.com/reboot-ai/crm-backend-go/internal/domain/auth"
	"github.com/reboot-ai/crm-backend-go/internal/domain/blog"
	"github.com/reboot-ai/crm-backend-go/internal/domain/business"
	"github.com/reboot-ai/crm-backend-go/internal/domain/client"
	"github.com/reboot-ai/crm-backend-go/internal/domain/employee"
	"github.com/reboot-ai/crm-backend-go/internal/domain/jobpost"
	"github.com/reboot-ai/crm-backend-go/internal/domain/report"
	"github.com/reboot-ai/crm-backend-go/internal/domain/user"
	"github.com/reboot-ai/crm-backend-go/internal/domain/websitelead"
	"github.com/reboot-ai/crm-backend-go/internal/pkg/validator"
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
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrSessionNotFound):
		Unauthorized(w, "Session not found")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrInvalidTargetMonth):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is inactive")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Business domain errors
	case errors.Is(err, business.ErrBusinessNotFound):
		NotFound(w, "Business not found")
	case errors.Is(err, business.ErrMobileNumberExists):
		Conflict(w, "Mobile number already registered")
	case errors.Is(err, business.ErrInvalidAssignee):
		BadRequest(w, err.Error(), nil)

	// Client and invoice domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrEmailExists):
		Conflict(w, "Client email already registered")
	case errors.Is(err, client.ErrInvoiceNotFound):
		NotFound(w, "Invoice not found")
	case errors.Is(err, client.ErrInvoiceNumberExists):
		Conflict(w, "Invoice number already exists")

	// Content domain errors
	case errors.Is(err, blog.ErrBlogNotFound):
		NotFound(w, "Blog not found")
	case errors.Is(err, jobpost.ErrJobPostNotFound):
		NotFound(w, "Job post not found")
	case errors.Is(err, websitelead.ErrLeadNotFound):
		NotFound(w, "Lead not found")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidYear), errors.Is(err, report.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, report.ErrReportGenerationFailed):
		InternalServerError(w, "Report generation failed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
