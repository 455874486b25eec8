package dto

import (
	"strings"

	"uniformes/internal/model"
)

// PrendaRequest is one {name, qty} entry in any create request.
type PrendaRequest struct {
	Nombre   string `json:"name" validate:"required,notblank,max=120"`
	Cantidad int    `json:"qty"  validate:"min=0,max=100000"`
}

// ToPrendas trims names and converts request items to model items.
// Case is preserved: reconciliation matches names exactly.
func ToPrendas(items []PrendaRequest) []model.Prenda {
	out := make([]model.Prenda, 0, len(items))
	for _, it := range items {
		out = append(out, model.Prenda{Nombre: strings.TrimSpace(it.Nombre), Cantidad: it.Cantidad})
	}
	return out
}

// FiltroReporte is bound from the query string of every report endpoint.
// Clave is a case-sensitive substring of the guide number or dni.
type FiltroReporte struct {
	Clave string `form:"key"   validate:"omitempty,max=60"`
	Mes   int    `form:"month" validate:"omitempty,min=1,max=12"`
	Anio  int    `form:"year"  validate:"omitempty,min=2000,max=2100"`
}
