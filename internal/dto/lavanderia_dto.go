package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearEnvioRequest struct {
	NumeroGuia string           `json:"guide_number" validate:"required,notblank,max=60"`
	Items      []PrendaRequest  `json:"items"        validate:"required,min=1,dive"`
	Peso       *decimal.Decimal `json:"weight"`
	Fecha      *time.Time       `json:"date"`
}

type RegistrarDevolucionRequest struct {
	NumeroGuia  string          `json:"guide_number" validate:"required,notblank,max=60"`
	Items       []PrendaRequest `json:"items"        validate:"required,min=1,dive"`
	Observacion *string         `json:"observation"  validate:"omitempty,max=1000"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PrendaResponse struct {
	Nombre   string `json:"name"`
	Cantidad int    `json:"qty"`
}

type EnvioResponse struct {
	ID         string           `json:"id"`
	NumeroGuia string           `json:"guide_number"`
	Fecha      time.Time        `json:"date"`
	Items      []PrendaResponse `json:"items"`
	// ItemsJSON is the stored item list as sent, for clients that parse it
	// themselves.
	ItemsJSON string           `json:"items_json"`
	Peso      *decimal.Decimal `json:"weight"`
	Estado    string           `json:"status"`
}

// LineaEstadoResponse is one item of GET /api/laundry/:key/status.
// Pendiente is raw: negative means more was returned than sent.
type LineaEstadoResponse struct {
	Nombre    string `json:"name"`
	Enviado   int    `json:"sent"`
	Devuelto  int    `json:"returned"`
	Pendiente int    `json:"pending"`
}

type EstadoEnvioResponse struct {
	NumeroGuia string                `json:"guide_number"`
	Estado     string                `json:"status"`
	Items      []LineaEstadoResponse `json:"items"`
}

type DevolucionRegistradaResponse struct {
	ID          string                `json:"id"`
	NumeroGuia  string                `json:"guide_number"`
	Estado      string                `json:"status"`
	Observacion string                `json:"observation"`
	Items       []LineaEstadoResponse `json:"items"`
}

type LavanderiaReporteItem struct {
	NumeroGuia   string           `json:"guide_number"`
	Fecha        time.Time        `json:"date"`
	FechaRetorno *time.Time       `json:"return_date"`
	Estado       string           `json:"status"`
	Peso         *decimal.Decimal `json:"weight"`
	Items        string           `json:"items_count"`
	Pendientes   string           `json:"pending_items"`
	Excedentes   string           `json:"excess_items,omitempty"`
}

// LavanderiaReporte carries the rows plus how many stored records could not be read.
type LavanderiaReporte struct {
	Filas    []LavanderiaReporteItem
	Omitidos int
}
