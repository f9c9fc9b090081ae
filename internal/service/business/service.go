package business

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/reboot-ai/crm-backend-go/internal/domain/business"
	"github.com/reboot-ai/crm-backend-go/internal/domain/employee"
)

type businessServiceImpl struct {
	businessRepo business.BusinessRepository
	employeeRepo employee.EmployeeRepository
}

func NewBusinessService(
	businessRepo business.BusinessRepository,
	employeeRepo employee.EmployeeRepository,
) business.BusinessService {
	return &businessServiceImpl{
		businessRepo: businessRepo,
		employeeRepo: employeeRepo,
	}
}

// ListBusinesses implements business.BusinessService.
func (s *businessServiceImpl) ListBusinesses(ctx context.Context, filter business.BusinessFilter) (business.ListBusinessResponse, error) {
	if err := filter.Validate(); err != nil {
		return business.ListBusinessResponse{}, err
	}

	businesses, total, err := s.businessRepo.List(ctx, filter)
	if err != nil {
		return business.ListBusinessResponse{}, err
	}

	items := make([]business.BusinessResponse, 0, len(businesses))
	for _, b := range businesses {
		items = append(items, toBusinessResponse(b))
	}

	return business.ListBusinessResponse{
		Items:      items,
		TotalItems: total,
		Page:       filter.Page,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

// GetBusiness implements business.BusinessService.
func (s *businessServiceImpl) GetBusiness(ctx context.Context, id string) (business.BusinessResponse, error) {
	found, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		return business.BusinessResponse{}, err
	}
	return toBusinessResponse(found), nil
}

// CreateBusiness implements business.BusinessService.
func (s *businessServiceImpl) CreateBusiness(ctx context.Context, req business.CreateBusinessRequest) (business.BusinessResponse, error) {
	if err := req.Validate(); err != nil {
		return business.BusinessResponse{}, err
	}

	exists, err := s.businessRepo.ExistsByMobileNumber(ctx, req.MobileNumber)
	if err != nil {
		return business.BusinessResponse{}, err
	}
	if exists {
		return business.BusinessResponse{}, business.ErrMobileNumberExists
	}

	status := req.Status
	if status == "" {
		status = "new"
	}

	created, err := s.businessRepo.Create(ctx, business.Business{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		MobileNumber:  req.MobileNumber,
		Category:      req.Category,
		City:          req.City,
		Status:        status,
		Remarks:       req.Remarks,
		LeadBy:        req.LeadBy,
		CreatedBy:     req.CreatedBy,
	})
	if err != nil {
		return business.BusinessResponse{}, err
	}

	slog.Info("business lead created", "business_id", created.ID, "city", created.City)

	return toBusinessResponse(created), nil
}

// UpdateBusiness implements business.BusinessService.
func (s *businessServiceImpl) UpdateBusiness(ctx context.Context, req business.UpdateBusinessRequest) (business.BusinessResponse, error) {
	if err := req.Validate(); err != nil {
		return business.BusinessResponse{}, err
	}

	if err := s.businessRepo.Update(ctx, req.ID, req); err != nil {
		return business.BusinessResponse{}, err
	}

	return s.GetBusiness(ctx, req.ID)
}

// AssignBusiness implements business.BusinessService. Every referenced
// employee must exist and be active.
func (s *businessServiceImpl) AssignBusiness(ctx context.Context, req business.AssignBusinessRequest) (business.BusinessResponse, error) {
	if err := req.Validate(); err != nil {
		return business.BusinessResponse{}, err
	}

	for _, assignee := range []*string{req.TelecallerID, req.DigitalMarketerID, req.BdeID, req.AssignedTo} {
		if assignee == nil {
			continue
		}
		found, err := s.employeeRepo.GetByID(ctx, *assignee)
		if err != nil {
			return business.BusinessResponse{}, business.ErrInvalidAssignee
		}
		if found.Status != employee.StatusActive {
			return business.BusinessResponse{}, business.ErrInvalidAssignee
		}
	}

	if err := s.businessRepo.Assign(ctx, req); err != nil {
		return business.BusinessResponse{}, err
	}

	return s.GetBusiness(ctx, req.ID)
}

func toBusinessResponse(b business.Business) business.BusinessResponse {
	resp := business.BusinessResponse{
		ID:                b.ID,
		Name:              b.Name,
		ContactPerson:     b.ContactPerson,
		MobileNumber:      b.MobileNumber,
		Category:          b.Category,
		City:              b.City,
		Status:            b.Status,
		Remarks:           b.Remarks,
		TelecallerID:      b.TelecallerID,
		DigitalMarketerID: b.DigitalMarkerID,
		BdeID:             b.BdeID,
		AssignedTo:        b.AssignedTo,
		LeadBy:            b.LeadBy,
		CreatedBy:         b.CreatedBy,
		CreatedAt:         b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         b.UpdatedAt.Format(time.RFC3339),
	}
	resp.FollowUpDate = formatCivilDate(b.FollowUpDate)
	resp.AppointmentDate = formatCivilDate(b.AppointmentDate)
	resp.VisitDate = formatCivilDate(b.VisitDate)
	return resp
}

func formatCivilDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.In(istZone).Format("2006-01-02")
	return &s
}

var istZone = time.FixedZone("IST", 5*3600+30*60)
