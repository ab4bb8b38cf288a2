package reports

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// QuarterlyReviewPDF renders the review as a printable summary table.
func QuarterlyReviewPDF(review QuarterlyReview) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Quarterly Performance Review")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", review.EmployeeName, review.EmployeeEmail))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %d %s", review.Year, review.Quarter))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Submissions: %d    Total Score: %.2f", review.Submissions, review.TotalWeightedScore))
	pdf.Ln(10)

	header := []struct {
		label string
		width float64
	}{
		{"Dimension", 45},
		{"Measure", 70},
		{"Avg Rating", 25},
		{"Total Actual", 28},
		{"Avg Target", 25},
		{"Weight", 22},
		{"Weighted", 25},
		{"Entries", 20},
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range header {
		pdf.CellFormat(col.width, 8, col.label, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, m := range review.Measures {
		pdf.CellFormat(header[0].width, 7, m.Dimension, "1", 0, "L", false, 0, "")
		pdf.CellFormat(header[1].width, 7, m.Measure, "1", 0, "L", false, 0, "")
		pdf.CellFormat(header[2].width, 7, fmt.Sprintf("%.2f", m.AvgRating), "1", 0, "C", false, 0, "")
		pdf.CellFormat(header[3].width, 7, fmt.Sprintf("%.2f", m.TotalActual), "1", 0, "C", false, 0, "")
		pdf.CellFormat(header[4].width, 7, fmt.Sprintf("%.2f", m.AvgTarget), "1", 0, "C", false, 0, "")
		pdf.CellFormat(header[5].width, 7, fmt.Sprintf("%.1f%%", m.AvgWeight), "1", 0, "C", false, 0, "")
		pdf.CellFormat(header[6].width, 7, fmt.Sprintf("%.2f", m.WeightedScore), "1", 0, "C", false, 0, "")
		pdf.CellFormat(header[7].width, 7, fmt.Sprintf("%d", m.Entries), "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total Weighted Score: %.2f", review.TotalWeightedScore))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
