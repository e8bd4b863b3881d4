package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/workholic/attendance-backend-go/internal/domain/attendance"
	"github.com/workholic/attendance-backend-go/internal/store"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Attendance Data"

var exportHeaders = []interface{}{
	"Employee Name", "Email", "Date", "Clock In", "Clock Out",
	"Status", "Break Duration (min)", "Total Breaks",
}

type ReportService interface {
	// ExportAttendanceXLSX renders every attendance record, with
	// computed break durations, as a workbook.
	ExportAttendanceXLSX(ctx context.Context) (data []byte, filename string, err error)

	// ExportAttendancePDF renders the same report as a PDF table.
	ExportAttendancePDF(ctx context.Context) (data []byte, filename string, err error)
}

type ReportServiceImpl struct {
	store store.Store
	now   func() time.Time
}

func NewReportService(st store.Store) ReportService {
	return &ReportServiceImpl{store: st, now: time.Now}
}

type exportRow struct {
	Name         string
	Email        string
	Date         string
	ClockIn      string
	ClockOut     string
	Status       string
	BreakMinutes int
	TotalBreaks  int
}

func (r *ReportServiceImpl) rows(ctx context.Context) ([]exportRow, error) {
	recs, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	rows := make([]exportRow, 0, len(recs.Attendance))
	for _, rec := range recs.Attendance {
		rows = append(rows, exportRow{
			Name:         recs.DisplayName(rec.Email),
			Email:        rec.Email,
			Date:         rec.Date,
			ClockIn:      formatStamp(rec.ClockIn),
			ClockOut:     formatStamp(rec.ClockOut),
			Status:       string(rec.Status),
			BreakMinutes: int(rec.BreakMinutes()),
			TotalBreaks:  len(rec.Breaks),
		})
	}
	return rows, nil
}

// ExportAttendanceXLSX implements ReportService.
func (r *ReportServiceImpl) ExportAttendanceXLSX(ctx context.Context) ([]byte, string, error) {
	rows, err := r.rows(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", fmt.Errorf("failed to build export: %w", err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, "", fmt.Errorf("failed to build export: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to build export: %w", err)
	}
	end, err := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build export: %w", err)
	}
	if err := f.SetCellStyle(exportSheet, "A1", end, style); err != nil {
		return nil, "", fmt.Errorf("failed to build export: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", fmt.Errorf("failed to build export: %w", err)
		}
		values := []interface{}{
			row.Name, row.Email, row.Date, row.ClockIn, row.ClockOut,
			row.Status, row.BreakMinutes, row.TotalBreaks,
		}
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return nil, "", fmt.Errorf("failed to build export: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to build export: %w", err)
	}
	return buf.Bytes(), r.filename("xlsx"), nil
}

// ExportAttendancePDF implements ReportService.
func (r *ReportServiceImpl) ExportAttendancePDF(ctx context.Context) ([]byte, string, error) {
	rows, err := r.rows(ctx)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, "Attendance Report")
	pdf.Ln(12)

	widths := []float64{45, 60, 25, 40, 40, 18, 25, 20}
	headers := []string{"Employee Name", "Email", "Date", "Clock In", "Clock Out", "Status", "Break (min)", "Breaks"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(224, 224, 224)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		cells := []string{
			row.Name, row.Email, row.Date, row.ClockIn, row.ClockOut,
			row.Status, fmt.Sprintf("%d", row.BreakMinutes), fmt.Sprintf("%d", row.TotalBreaks),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to build export: %w", err)
	}
	return buf.Bytes(), r.filename("pdf"), nil
}

func (r *ReportServiceImpl) filename(ext string) string {
	return fmt.Sprintf("attendance-export-%s.%s", r.now().Format(attendance.DateLayout), ext)
}

func formatStamp(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format("2006-01-02 15:04:05")
}
