package report

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/reboot-ai/crm-backend-go/internal/domain/employee"
	"github.com/reboot-ai/crm-backend-go/internal/domain/report"
)

type reportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	targetRepo   employee.TargetRepository
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	targetRepo employee.TargetRepository,
) report.ReportService {
	return &reportServiceImpl{
		employeeRepo: employeeRepo,
		targetRepo:   targetRepo,
	}
}

var reportRoles = []employee.Role{
	employee.RoleTelecaller,
	employee.RoleDigitalMarketer,
	employee.RoleBDE,
}

// fetchAll loads every employee of the three sales roles with their targets.
// The three role fetches run concurrently and are joined before any
// aggregation starts; one failure fails the whole report.
func (s *reportServiceImpl) fetchAll(ctx context.Context) ([]employee.Employee, error) {
	results := make([][]employee.Employee, len(reportRoles))

	g, gctx := errgroup.WithContext(ctx)
	for i, role := range reportRoles {
		i, role := i, role
		g.Go(func() error {
			employees, err := s.employeeRepo.ListByRole(gctx, role)
			if err != nil {
				return err
			}
			results[i] = employees
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []employee.Employee
	for _, employees := range results {
		all = append(all, employees...)
	}

	ids := make([]string, 0, len(all))
	for _, e := range all {
		ids = append(ids, e.ID)
	}
	targetsByEmployee, err := s.targetRepo.ListForEmployees(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range all {
		all[i].Targets = targetsByEmployee[all[i].ID]
	}
	return all, nil
}

// GeneratePeriodSummary implements report.ReportService.
func (s *reportServiceImpl) GeneratePeriodSummary(ctx context.Context, req report.SummaryRequest) (report.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.SummaryResponse{}, err
	}
	monthRange := req.Range()

	employees, err := s.fetchAll(ctx)
	if err != nil {
		return report.SummaryResponse{}, err
	}

	resp := report.SummaryResponse{
		Rows:        make([]report.EmployeeSummaryRow, 0, len(employees)),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}

	for _, e := range employees {
		row := report.EmployeeSummaryRow{
			EmployeeID: e.ID,
			Name:       e.Name,
			Role:       string(e.Role),
			Collection: report.SumCollections(e.Targets, monthRange),
		}

		// The period target is the single latest applicable plan, while
		// collections sum across every month in the period.
		if resolved := report.ResolveLatestTarget(e.Targets, monthRange); resolved != nil {
			row.TargetAmount = float64(resolved.Amount)
			row.Achievement = float64(resolved.Achievement)
			row.AchievementPercent = report.AchievementPercent(row.TargetAmount, row.Achievement)
			row.TargetMonth = resolved.Month
			row.TargetYear = resolved.Year
		}

		resp.TotalTarget += row.TargetAmount
		resp.TotalAchieved += row.Achievement
		resp.TotalCollection += row.Collection
		resp.Rows = append(resp.Rows, row)
	}

	return resp, nil
}

// GenerateYearGraph implements report.ReportService.
func (s *reportServiceImpl) GenerateYearGraph(ctx context.Context, req report.GraphRequest) (report.GraphResponse, error) {
	if err := req.Validate(); err != nil {
		return report.GraphResponse{}, err
	}

	employees, err := s.fetchAll(ctx)
	if err != nil {
		return report.GraphResponse{}, err
	}

	perEmployee := make([][]report.Target, 0, len(employees))
	for _, e := range employees {
		perEmployee = append(perEmployee, e.Targets)
	}

	achievementSeries := report.BuildYearSeries(perEmployee, req.Year)

	return report.GraphResponse{
		Year:                req.Year,
		TargetVsAchievement: achievementSeries,
		TargetVsCollection:  report.BuildYearCollectionSeries(perEmployee, req.Year),
		BarHeights:          report.BarHeights(achievementSeries),
	}, nil
}
