package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearTrabajadorRequest struct {
	DNI          string `json:"dni"           validate:"required,notblank,max=20"`
	Nombre       string `json:"name"          validate:"required,notblank,max=100"`
	Apellido     string `json:"surname"       validate:"required,notblank,max=100"`
	TipoContrato string `json:"contract_type" validate:"required,notblank,max=60"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type TrabajadorResponse struct {
	ID           string `json:"id"`
	DNI          string `json:"dni"`
	Nombre       string `json:"name"`
	Apellido     string `json:"surname"`
	TipoContrato string `json:"contract_type"`
}
