package dto

import "time"

// ReportImage imagen con su leyenda, una por página.
type ReportImage struct {
	Caption string
	Path    string
}

// ReportDocument todo lo que el generador PDF necesita para un reporte.
type ReportDocument struct {
	RunID       string
	Company     string
	Title       string
	Subtitle    string
	GeneratedAt time.Time
	Insights    []InsightItem
	Images      []ReportImage
}
