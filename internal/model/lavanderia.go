package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EnvioLavanderia is an outbound laundry shipment identified by its guide number.
// There is no status column: the status is computed from DevolucionLavanderia rows.
type EnvioLavanderia struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NumeroGuia string           `gorm:"type:varchar(60);uniqueIndex;not null"`
	Fecha      time.Time        `gorm:"not null;index"`
	ItemsJSON  string           `gorm:"column:items_json;type:text;not null"`
	Peso       *decimal.Decimal `gorm:"type:decimal(10,2)"`
	CreatedAt  time.Time
}

func (EnvioLavanderia) TableName() string { return "envios_lavanderia" }

func (e *EnvioLavanderia) Prendas() ([]Prenda, error) { return DecodificarPrendas(e.ItemsJSON) }

// DevolucionLavanderia is a (possibly partial) return for a guide number.
// NumeroGuia is only matched by equality; many returns may share one guide.
// Estado is a snapshot taken right after the return was recorded.
type DevolucionLavanderia struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NumeroGuia  string    `gorm:"type:varchar(60);index;not null"`
	Fecha       time.Time `gorm:"not null"`
	ItemsJSON   string    `gorm:"column:items_json;type:text;not null"`
	Estado      string    `gorm:"type:varchar(20);not null"`
	Observacion *string
	CreatedAt   time.Time
}

func (DevolucionLavanderia) TableName() string { return "devoluciones_lavanderia" }

func (d *DevolucionLavanderia) Prendas() ([]Prenda, error) { return DecodificarPrendas(d.ItemsJSON) }
