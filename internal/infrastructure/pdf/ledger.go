package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/gstippagol/habit/internal/service"
)

// LedgerRenderer lays out a month's completion grid as a landscape A4
// PDF table: one row per day, one column per habit, and a totals row
// with the completion percentages.
type LedgerRenderer struct{}

var _ service.LedgerRenderer = (*LedgerRenderer)(nil)

// NewLedgerRenderer creates a new ledger renderer.
func NewLedgerRenderer() *LedgerRenderer {
	return &LedgerRenderer{}
}

// Render builds the PDF document and returns its bytes.
func (r *LedgerRenderer) Render(username string, ledger *service.MonthlyLedger) ([]byte, error) {
	doc := fpdf.New("L", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	// Header
	doc.SetFont("Helvetica", "B", 22)
	doc.SetTextColor(0, 150, 200)
	doc.CellFormat(0, 10, "HABIT TRACKER - MONTHLY LEDGER", "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 12)
	doc.SetTextColor(100, 100, 100)
	period := fmt.Sprintf("User: %s | Period: %s %d", username, ledger.Month, ledger.Year)
	doc.CellFormat(0, 8, period, "", 1, "L", false, 0, "")
	doc.Ln(4)

	pageWidth, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	usable := pageWidth - left - right

	dayColWidth := 14.0
	habitColWidth := (usable - dayColWidth) / float64(len(ledger.Titles))

	// Table header
	doc.SetFont("Helvetica", "B", 8)
	doc.SetFillColor(10, 10, 12)
	doc.SetTextColor(0, 204, 255)
	doc.CellFormat(dayColWidth, 7, "Date", "1", 0, "C", true, 0, "")
	for _, title := range ledger.Titles {
		doc.CellFormat(habitColWidth, 7, truncate(title, 40), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	// Day rows
	doc.SetFont("Helvetica", "", 7)
	doc.SetTextColor(50, 50, 50)
	for i, row := range ledger.Rows {
		doc.CellFormat(dayColWidth, 5, fmt.Sprintf("%02d", i+1), "1", 0, "C", false, 0, "")
		for _, cell := range row {
			doc.CellFormat(habitColWidth, 5, string(cell), "1", 0, "C", false, 0, "")
		}
		doc.Ln(-1)
	}

	// Totals row
	doc.SetFont("Helvetica", "B", 7)
	doc.SetFillColor(230, 247, 255)
	doc.CellFormat(dayColWidth, 6, "TOTAL", "1", 0, "C", true, 0, "")
	for _, rollup := range ledger.Rollups {
		total := fmt.Sprintf("%d/%d (%d%%)", rollup.Completed, rollup.DaysInMonth, rollup.Percent)
		doc.CellFormat(habitColWidth, 6, total, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render ledger PDF: %w", err)
	}

	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
