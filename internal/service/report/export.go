package report

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/reboot-ai/crm-backend-go/internal/domain/report"
)

// ExportYearReport implements report.ReportService. The workbook carries
// the period summary for the whole year on one sheet and the monthly
// series on another.
func (s *reportServiceImpl) ExportYearReport(ctx context.Context, req report.GraphRequest) ([]byte, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	summary, err := s.GeneratePeriodSummary(ctx, report.SummaryRequest{
		StartDate: fmt.Sprintf("%d-01-01", req.Year),
		EndDate:   fmt.Sprintf("%d-12-31", req.Year),
	})
	if err != nil {
		return nil, "", err
	}

	graph, err := s.GenerateYearGraph(ctx, req)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"DDEBF7"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return nil, "", err
	}

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, "", err
	}

	summaryHeaders := []string{"Name", "Role", "Target", "Achievement", "Achievement %", "Collection", "Target Month"}
	for i, h := range summaryHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(summarySheet, cell, h)
		f.SetCellStyle(summarySheet, cell, cell, headerStyle)
	}

	for rowIdx, row := range summary.Rows {
		targetMonth := ""
		if row.TargetMonth != "" {
			targetMonth = fmt.Sprintf("%s %d", row.TargetMonth, row.TargetYear)
		}
		values := []interface{}{
			row.Name,
			row.Role,
			row.TargetAmount,
			row.Achievement,
			row.AchievementPercent,
			row.Collection,
			targetMonth,
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(summarySheet, cell, v)
		}
	}

	totalRow := len(summary.Rows) + 2
	f.SetCellValue(summarySheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.SetCellValue(summarySheet, fmt.Sprintf("C%d", totalRow), summary.TotalTarget)
	f.SetCellValue(summarySheet, fmt.Sprintf("D%d", totalRow), summary.TotalAchieved)
	f.SetCellValue(summarySheet, fmt.Sprintf("F%d", totalRow), summary.TotalCollection)
	f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("G%d", totalRow), headerStyle)
	f.SetColWidth(summarySheet, "A", "B", 24)
	f.SetColWidth(summarySheet, "C", "G", 15)

	const monthlySheet = "Monthly"
	if _, err := f.NewSheet(monthlySheet); err != nil {
		return nil, "", err
	}

	monthlyHeaders := []string{"Month", "Target", "Achieved", "Collected", "Bar Height %"}
	for i, h := range monthlyHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(monthlySheet, cell, h)
		f.SetCellStyle(monthlySheet, cell, cell, headerStyle)
	}
	for i, bucket := range graph.TargetVsAchievement {
		rowNum := i + 2
		f.SetCellValue(monthlySheet, fmt.Sprintf("A%d", rowNum), bucket.Month)
		f.SetCellValue(monthlySheet, fmt.Sprintf("B%d", rowNum), bucket.Target)
		f.SetCellValue(monthlySheet, fmt.Sprintf("C%d", rowNum), bucket.ClearedAmount)
		f.SetCellValue(monthlySheet, fmt.Sprintf("D%d", rowNum), graph.TargetVsCollection[i].ClearedAmount)
		f.SetCellValue(monthlySheet, fmt.Sprintf("E%d", rowNum), graph.BarHeights[i])
	}
	f.SetColWidth(monthlySheet, "A", "E", 15)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", report.ErrReportGenerationFailed
	}

	filename := fmt.Sprintf("sales-report-%d-%s.xlsx", req.Year, time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
