package websitelead

import "context"

type LeadRepository interface {
	GetByID(ctx context.Context, id string) (WebsiteLead, error)
	List(ctx context.Context, status *Status) ([]WebsiteLead, error)
	Create(ctx context.Context, newLead WebsiteLead) (WebsiteLead, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
