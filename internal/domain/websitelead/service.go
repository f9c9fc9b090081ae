package websitelead

import "context"

type LeadService interface {
	ListLeads(ctx context.Context, status *Status) ([]LeadResponse, error)
	GetLead(ctx context.Context, id string) (LeadResponse, error)
	CreateLead(ctx context.Context, req CreateLeadRequest) (LeadResponse, error)
	UpdateLeadStatus(ctx context.Context, req UpdateLeadStatusRequest) (LeadResponse, error)
}
