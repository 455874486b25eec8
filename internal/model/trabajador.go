package model

import (
	"time"

	"github.com/google/uuid"
)

// Trabajador is a worker who receives uniforms. DNI is the natural key used by
// deliveries and uniform returns; it is not a foreign key at storage level.
// TipoContrato: "Regular Otro sindicato" | "Regular PYA" | "Temporal" (open set)
type Trabajador struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DNI          string    `gorm:"column:dni;type:varchar(20);uniqueIndex;not null"`
	Nombre       string    `gorm:"not null"`
	Apellido     string    `gorm:"not null"`
	TipoContrato string    `gorm:"type:varchar(60);not null"`
	CreatedAt    time.Time
}

func (Trabajador) TableName() string { return "trabajadores" }

// NombreCompleto is the display name used in reports and receipts.
func (t Trabajador) NombreCompleto() string { return t.Nombre + " " + t.Apellido }
