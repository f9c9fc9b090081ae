package client

import "errors"

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvoiceNumberExists = errors.New("invoice number already exists")
	ErrEmailExists         = errors.New("client email already registered")
)
