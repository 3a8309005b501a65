// Package report renders utilisation results as human-readable breakdowns and PDF documents.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/eugenenazirov/wagon-calculator/internal/calculator"
)

// Document is everything needed to render one utilisation report.
type Document struct {
	Title       string
	GeneratedAt time.Time
	Vehicle     calculator.VehicleSpec
	Input       calculator.LoadInput
	Result      calculator.Report
}

// Metric is a labelled utilisation percentage.
type Metric struct {
	Label string
	Pct   float64
}

// Metrics returns the three utilisation percentages in display order.
func Metrics(rep calculator.Report) []Metric {
	return []Metric{
		{Label: "Floor space", Pct: rep.FloorUtilisationPct},
		{Label: "Cube", Pct: rep.CubeUtilisationPct},
		{Label: "Weight", Pct: rep.WeightUtilisationPct},
	}
}

// Breakdown explains how the result was derived, one step per line.
func Breakdown(spec calculator.VehicleSpec, in calculator.LoadInput, rep calculator.Report) []string {
	return []string{
		fmt.Sprintf("Stillages needed = ceil(%d / %d) = %d",
			in.Doors, calculator.DoorsPerStillage, rep.StillagesNeeded),
		fmt.Sprintf("Stillage equivalent = %d / %d + %.2f / %.2f = %.3f",
			in.Doors, calculator.DoorsPerStillage, in.Pallets, calculator.PalletsPerStillage, rep.StillageEquivalent),
		fmt.Sprintf("Large pallets used = %.3f x %.2f = %.2f",
			rep.StillageEquivalent, calculator.PalletsPerStillage, rep.LargePalletsUsed),
		fmt.Sprintf("Floor capacity = %.2f stillages (%.2f large pallets)",
			spec.FloorCapacityStillages, rep.FloorCapacityPallets),
		fmt.Sprintf("Cube demand = %.3f x %.2f = %.2f of %.2f",
			rep.StillageEquivalent, spec.CubePerStillage, rep.StillageEquivalent*spec.CubePerStillage, spec.CubeCapacity),
		fmt.Sprintf("Weight demand = %.3f x %.2f = %.2f of %.2f",
			rep.StillageEquivalent, spec.WeightPerStillage, rep.StillageEquivalent*spec.WeightPerStillage, spec.WeightCapacity),
	}
}

// Status summarises whether the load fits the vehicle.
func Status(rep calculator.Report) string {
	if rep.OverCapacity {
		return fmt.Sprintf("Over capacity: floor remaining %.2f stillages", rep.FloorRemainingStillages)
	}
	return fmt.Sprintf("Within capacity: floor remaining %.2f stillages", rep.FloorRemainingStillages)
}

// WritePDF renders doc as an A4 PDF to w.
func WritePDF(w io.Writer, doc Document) error {
	if doc.Title == "" {
		doc.Title = "Wagon Utilisation Report"
	}
	if doc.GeneratedAt.IsZero() {
		doc.GeneratedAt = time.Now().UTC()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, doc.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Vehicle: %s", doc.Vehicle.Name))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Doors: %d   Large pallets: %.2f", doc.Input.Doors, doc.Input.Pallets))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", doc.GeneratedAt.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Utilisation")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, m := range Metrics(doc.Result) {
		pdf.CellFormat(40, 6, m.Label, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.1f%%", m.Pct), "", 1, "R", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Breakdown")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range Breakdown(doc.Vehicle, doc.Input, doc.Result) {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.MultiCell(0, 6, Status(doc.Result), "", "L", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
