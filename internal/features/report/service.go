package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"go-legal/internal/features/cases"
	"go-legal/internal/features/transition"

	"github.com/xuri/excelize/v2"
)

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"

	sheetName = "Transitions"
)

var historyColumns = []string{"Timestamp", "From Phase", "To Phase", "From Status", "To Status", "User", "Role", "Approval", "Reason"}

// HistorySource reads the executed transitions of a case.
type HistorySource interface {
	GetTransitionHistory(ctx context.Context, caseID string) ([]transition.TransitionHistory, error)
}

// CaseFinder resolves the case being exported.
type CaseFinder interface {
	GetCase(ctx context.Context, id string) (*cases.Case, error)
}

type ReportService interface {
	// ExportTransitionHistory renders the history of a case and returns the
	// file contents and a download name.
	ExportTransitionHistory(ctx context.Context, caseID, format string) ([]byte, string, error)
}

type ReportServiceImpl struct {
	History HistorySource
	Cases   CaseFinder
}

func NewReportService(history transition.TransitionService, caseService cases.CaseService) ReportService {
	return &ReportServiceImpl{
		History: history,
		Cases:   caseService,
	}
}

func (s *ReportServiceImpl) ExportTransitionHistory(ctx context.Context, caseID, format string) ([]byte, string, error) {
	c, err := s.Cases.GetCase(ctx, caseID)
	if err != nil {
		return nil, "", err
	}
	history, err := s.History.GetTransitionHistory(ctx, caseID)
	if err != nil {
		return nil, "", err
	}

	rows := make([][]string, 0, len(history))
	for _, h := range history {
		rows = append(rows, []string{
			h.Timestamp.Format("2006-01-02 15:04:05"),
			h.FromPhase.Label(),
			h.ToPhase.Label(),
			string(h.FromStatus),
			string(h.ToStatus),
			h.UserID,
			string(h.UserRole),
			h.ApprovalID,
			h.Reason,
		})
	}

	base := fmt.Sprintf("case_%s_transitions_%s", c.CaseNumber, time.Now().Format("20060102_150405"))
	switch format {
	case FormatCSV:
		data, err := toCSV(rows)
		return data, base + ".csv", err
	case FormatXLSX, "":
		data, err := toXLSX(c, rows)
		return data, base + ".xlsx", err
	}
	return nil, "", fmt.Errorf("unsupported format %q", format)
}

func toCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(historyColumns); err != nil {
		return nil, err
	}
	if err := writer.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toXLSX(c *cases.Case, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(sheetName); err != nil {
		return nil, err
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	index, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	// Row 1 names the case, row 2 holds the column headers.
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s: %s (%s)", c.CaseNumber, c.Title, c.Phase.Label()))
	for i, col := range historyColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheetName, cell, col)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, row := range rows {
		for colIdx, val := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+3)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	for i := range historyColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 20)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
