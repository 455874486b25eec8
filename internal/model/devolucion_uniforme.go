package model

import (
	"time"

	"github.com/google/uuid"
)

// DevolucionUniforme records garments a worker hands back. It is not
// reconciled against Entrega.
type DevolucionUniforme struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DNI           string    `gorm:"column:dni;type:varchar(20);index;not null"`
	Fecha         time.Time `gorm:"not null;index"`
	ItemsJSON     string    `gorm:"column:items_json;type:text;not null"`
	Observaciones *string
	CreatedAt     time.Time
}

func (DevolucionUniforme) TableName() string { return "devoluciones_uniforme" }

func (d *DevolucionUniforme) Prendas() ([]Prenda, error) { return DecodificarPrendas(d.ItemsJSON) }
