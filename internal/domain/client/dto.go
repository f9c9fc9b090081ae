package client

import (
	"github.com/reboot-ai/crm-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// CLIENT DTOs
// ========================================

type CreateClientRequest struct {
	Name         string  `json:"name"`
	ContactName  string  `json:"contactName"`
	Email        string  `json:"email"`
	MobileNumber string  `json:"mobileNumber"`
	Address      *string `json:"address,omitempty"`
	City         string  `json:"city"`
	GSTIN        *string `json:"gstin,omitempty"`
}

func (r *CreateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if !validator.IsValidPhoneNumber(r.MobileNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobileNumber",
			Message: "mobile number must be a valid 10-digit Indian number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateClientRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	ContactName  *string `json:"contactName,omitempty"`
	Email        *string `json:"email,omitempty"`
	MobileNumber *string `json:"mobileNumber,omitempty"`
	Address      *string `json:"address,omitempty"`
	City         *string `json:"city,omitempty"`
	GSTIN        *string `json:"gstin,omitempty"`
}

func (r *UpdateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.MobileNumber != nil && !validator.IsValidPhoneNumber(*r.MobileNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobileNumber",
			Message: "mobile number must be a valid 10-digit Indian number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClientResponse struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	ContactName  string  `json:"contactName,omitempty"`
	Email        string  `json:"email"`
	MobileNumber string  `json:"mobileNumber"`
	Address      *string `json:"address,omitempty"`
	City         string  `json:"city,omitempty"`
	GSTIN        *string `json:"gstin,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// ========================================
// INVOICE DTOs
// ========================================

type InvoiceItemRequest struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

type CreateInvoiceRequest struct {
	ClientID      string               `json:"clientId"`
	InvoiceNumber string               `json:"invoiceNumber"`
	IssueDate     string               `json:"issueDate"` // YYYY-MM-DD
	DueDate       *string              `json:"dueDate,omitempty"`
	TaxPercent    decimal.Decimal      `json:"taxPercent"`
	Items         []InvoiceItemRequest `json:"items"`
}

func (r *CreateInvoiceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "clientId",
			Message: "clientId is required",
		})
	}
	if validator.IsEmpty(r.InvoiceNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "invoiceNumber",
			Message: "invoiceNumber is required",
		})
	}
	if _, ok := validator.IsValidDate(r.IssueDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "issueDate",
			Message: "issueDate must be in YYYY-MM-DD format",
		})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "dueDate",
				Message: "dueDate must be in YYYY-MM-DD format",
			})
		}
	}
	if len(r.Items) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "items",
			Message: "at least one line item is required",
		})
	}
	for _, item := range r.Items {
		if validator.IsEmpty(item.Description) || item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "items",
				Message: "each item needs a description, positive quantity and non-negative unit price",
			})
			break
		}
	}
	if r.TaxPercent.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "taxPercent",
			Message: "taxPercent must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type InvoiceItemResponse struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

type InvoiceResponse struct {
	ID            string                `json:"_id"`
	ClientID      string                `json:"clientId"`
	ClientName    string                `json:"clientName,omitempty"`
	InvoiceNumber string                `json:"invoiceNumber"`
	IssueDate     string                `json:"issueDate"`
	DueDate       *string               `json:"dueDate,omitempty"`
	Status        InvoiceStatus         `json:"status"`
	Items         []InvoiceItemResponse `json:"items"`
	Subtotal      decimal.Decimal       `json:"subtotal"`
	TaxPercent    decimal.Decimal       `json:"taxPercent"`
	Total         decimal.Decimal       `json:"total"`
}
