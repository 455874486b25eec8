package model

import (
	"time"

	"github.com/google/uuid"
)

// ActaEntrega is everything the receipt renderer needs for one delivery.
type ActaEntrega struct {
	EntregaID  uuid.UUID
	Trabajador Trabajador
	Prendas    []Prenda
	Fecha      time.Time
}
