package business

import "context"

type BusinessRepository interface {
	GetByID(ctx context.Context, id string) (Business, error)
	Create(ctx context.Context, newBusiness Business) (Business, error)
	Update(ctx context.Context, id string, req UpdateBusinessRequest) error
	Assign(ctx context.Context, req AssignBusinessRequest) error
	List(ctx context.Context, filter BusinessFilter) ([]Business, int64, error)
	ExistsByMobileNumber(ctx context.Context, mobileNumber string) (bool, error)

	// CountByStatusForEmployees returns, per employee id, the number of
	// assigned businesses per status. Feeds the statuscount field of the
	// extended role lists.
	CountByStatusForEmployees(ctx context.Context, employeeIDs []string) (map[string]map[string]int64, error)
}
