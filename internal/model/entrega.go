package model

import (
	"time"

	"github.com/google/uuid"
)

// Entrega records a uniform delivery to a worker.
// PDFPath stays nil until the receipt has been rendered successfully.
type Entrega struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DNI       string    `gorm:"column:dni;type:varchar(20);index;not null"`
	Fecha     time.Time `gorm:"not null;index"`
	ItemsJSON string    `gorm:"column:items_json;type:text;not null"`
	PDFPath   *string   `gorm:"column:pdf_path"`
	CreatedAt time.Time
}

func (Entrega) TableName() string { return "entregas" }

func (e *Entrega) Prendas() ([]Prenda, error) { return DecodificarPrendas(e.ItemsJSON) }
