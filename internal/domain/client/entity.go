package client

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client is a converted lead with billing details.
type Client struct {
	ID           string
	Name         string
	ContactName  string
	Email        string
	MobileNumber string
	Address      *string
	City         string
	GSTIN        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

type InvoiceStatus string

const (
	InvoiceStatusDraft  InvoiceStatus = "draft"
	InvoiceStatusIssued InvoiceStatus = "issued"
	InvoiceStatusPaid   InvoiceStatus = "paid"
)

type Invoice struct {
	ID            string
	ClientID      string
	InvoiceNumber string
	IssueDate     time.Time
	DueDate       *time.Time
	Status        InvoiceStatus
	Items         []InvoiceItem
	Subtotal      decimal.Decimal
	TaxPercent    decimal.Decimal
	Total         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	ClientName *string
}

type InvoiceItem struct {
	ID          string
	InvoiceID   string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Amount is quantity times unit price for one line.
func (i InvoiceItem) Amount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ComputeTotals fills Subtotal and Total from the line items and tax rate.
func (inv *Invoice) ComputeTotals() {
	subtotal := decimal.Zero
	for _, item := range inv.Items {
		subtotal = subtotal.Add(item.Amount())
	}
	inv.Subtotal = subtotal
	tax := subtotal.Mul(inv.TaxPercent).Div(decimal.NewFromInt(100))
	inv.Total = subtotal.Add(tax).Round(2)
}
