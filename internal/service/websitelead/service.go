package websitelead

import (
	"context"
	"log/slog"
	"time"

	"github.com/reboot-ai/crm-backend-go/internal/domain/websitelead"
)

type leadServiceImpl struct {
	leadRepo websitelead.LeadRepository
}

func NewLeadService(leadRepo websitelead.LeadRepository) websitelead.LeadService {
	return &leadServiceImpl{leadRepo: leadRepo}
}

// ListLeads implements websitelead.LeadService.
func (s *leadServiceImpl) ListLeads(ctx context.Context, status *websitelead.Status) ([]websitelead.LeadResponse, error) {
	leads, err := s.leadRepo.List(ctx, status)
	if err != nil {
		return nil, err
	}

	items := make([]websitelead.LeadResponse, 0, len(leads))
	for _, l := range leads {
		items = append(items, toLeadResponse(l))
	}
	return items, nil
}

// GetLead implements websitelead.LeadService.
func (s *leadServiceImpl) GetLead(ctx context.Context, id string) (websitelead.LeadResponse, error) {
	found, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return websitelead.LeadResponse{}, err
	}
	return toLeadResponse(found), nil
}

// CreateLead implements websitelead.LeadService. The public contact form
// lands here, so every new lead starts in the "new" bucket.
func (s *leadServiceImpl) CreateLead(ctx context.Context, req websitelead.CreateLeadRequest) (websitelead.LeadResponse, error) {
	if err := req.Validate(); err != nil {
		return websitelead.LeadResponse{}, err
	}

	created, err := s.leadRepo.Create(ctx, websitelead.WebsiteLead{
		Name:         req.Name,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
		Message:      req.Message,
		Source:       req.Source,
		Status:       websitelead.StatusNew,
	})
	if err != nil {
		return websitelead.LeadResponse{}, err
	}

	slog.Info("website lead received", "lead_id", created.ID, "source", created.Source)

	return toLeadResponse(created), nil
}

// UpdateLeadStatus implements websitelead.LeadService.
func (s *leadServiceImpl) UpdateLeadStatus(ctx context.Context, req websitelead.UpdateLeadStatusRequest) (websitelead.LeadResponse, error) {
	if err := req.Validate(); err != nil {
		return websitelead.LeadResponse{}, err
	}

	if err := s.leadRepo.UpdateStatus(ctx, req.ID, req.Status); err != nil {
		return websitelead.LeadResponse{}, err
	}

	return s.GetLead(ctx, req.ID)
}

func toLeadResponse(l websitelead.WebsiteLead) websitelead.LeadResponse {
	return websitelead.LeadResponse{
		ID:           l.ID,
		Name:         l.Name,
		Email:        l.Email,
		MobileNumber: l.MobileNumber,
		Message:      l.Message,
		Source:       l.Source,
		Status:       l.Status,
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
	}
}
