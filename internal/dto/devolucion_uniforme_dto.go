package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegistrarDevolucionUniformeRequest struct {
	DNI           string          `json:"dni"          validate:"required,notblank,max=20"`
	Items         []PrendaRequest `json:"items"        validate:"required,min=1,dive"`
	Observaciones *string         `json:"observations" validate:"omitempty,max=1000"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DevolucionUniformeCreadaResponse struct {
	Mensaje string `json:"message"`
	ID      string `json:"id"`
}

type DevolucionUniformeReporteItem struct {
	ID            string    `json:"id"`
	Usuario       string    `json:"user"`
	DNI           string    `json:"dni"`
	Fecha         time.Time `json:"date"`
	Items         string    `json:"items"`
	Observaciones *string   `json:"observations"`
}
