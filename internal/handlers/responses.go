package handlers

import (
	"ecommerce-dashboard/internal/analysis"
	"ecommerce-dashboard/internal/models"
)

// Estructuras para respuestas
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

type ChartInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	PNG   string `json:"png"`
}

type ChartListResponse struct {
	Total  int         `json:"total"`
	Charts []ChartInfo `json:"charts"`
}

type ColumnSummary struct {
	Column string `json:"column"`
	analysis.Summary
}

type SummaryResponse struct {
	Rows     int               `json:"rows"`
	Columns  []string          `json:"columns"`
	Describe []ColumnSummary   `json:"describe"`
	Head     []*models.Product `json:"head"`
}

type HealthResponse struct {
	Status       string `json:"status"`
	Rows         int    `json:"rows"`
	Charts       int    `json:"charts"`
	CacheEntries *int   `json:"cache_entries,omitempty"`
}

// ValidationError representa un error de validación
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
