package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarEntregaRequest struct {
	DNI   string          `json:"dni"   validate:"required,notblank,max=20"`
	Items []PrendaRequest `json:"items" validate:"required,min=1,dive"`
	// Fecha defaults to the server time when omitted.
	Fecha *time.Time `json:"date"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EntregaCreadaResponse struct {
	EntregaID string `json:"delivery_id"`
	PDFUrl    string `json:"pdf_url"`
}

type EntregaReporteItem struct {
	ID      string    `json:"id"`
	Usuario string    `json:"user"`
	DNI     string    `json:"dni"`
	Fecha   time.Time `json:"date"`
	Items   string    `json:"items"`
	PDFUrl  *string   `json:"pdf_url"`
}
