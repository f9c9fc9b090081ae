package business

import "context"

// BusinessService defines business logic for lead operations
type BusinessService interface {
	// ListBusinesses applies the dashboard's filter contract with pagination
	ListBusinesses(ctx context.Context, filter BusinessFilter) (ListBusinessResponse, error)

	// GetBusiness retrieves a single lead
	GetBusiness(ctx context.Context, id string) (BusinessResponse, error)

	// CreateBusiness registers a new lead
	CreateBusiness(ctx context.Context, req CreateBusinessRequest) (BusinessResponse, error)

	// UpdateBusiness updates lead fields including pipeline dates and status
	UpdateBusiness(ctx context.Context, req UpdateBusinessRequest) (BusinessResponse, error)

	// AssignBusiness attaches role-specific employee ids to a lead
	AssignBusiness(ctx context.Context, req AssignBusinessRequest) (BusinessResponse, error)
}
