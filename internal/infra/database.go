package infra

import (
	"fmt"

	"uniformes/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the GORM connection pool. TranslateError is required: the
// services rely on gorm.ErrDuplicatedKey to detect unique-key races.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

func modelos() []any {
	return []any{
		&model.Trabajador{},
		&model.Entrega{},
		&model.EnvioLavanderia{},
		&model.DevolucionLavanderia{},
		&model.DevolucionUniforme{},
	}
}

// Migrate creates / updates every table with AutoMigrate and then applies the
// idempotent SQL patches AutoMigrate cannot express.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(modelos()...); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// TablasFaltantes lists the model tables not present in the database. An
// empty result means Migrate has run at least once.
func TablasFaltantes(db *gorm.DB) []string {
	var faltan []string
	m := db.Migrator()
	for _, mod := range modelos() {
		if !m.HasTable(mod) {
			stmt := &gorm.Statement{DB: db}
			if err := stmt.Parse(mod); err != nil {
				faltan = append(faltan, fmt.Sprintf("%T", mod))
				continue
			}
			faltan = append(faltan, stmt.Schema.Table)
		}
	}
	return faltan
}

// applySchemaPatches runs DDL that is safe to re-run on an already-patched DB.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// Older databases stored a status column on the shipment; status is now
		// derived from the returns and a stale value must not be read by anyone.
		{"drop legacy envios_lavanderia.status", `
DO $$ BEGIN
  IF EXISTS (SELECT 1 FROM information_schema.columns
             WHERE table_name = 'envios_lavanderia' AND column_name = 'status') THEN
    ALTER TABLE envios_lavanderia DROP COLUMN status;
  END IF;
END $$`},
		// Status and report queries read every return of a guide in date order.
		{"idx_devoluciones_lavanderia_guia_fecha",
			`CREATE INDEX IF NOT EXISTS idx_devoluciones_lavanderia_guia_fecha
			     ON devoluciones_lavanderia (numero_guia, fecha)`},
		{"idx_devoluciones_uniforme_fecha",
			`CREATE INDEX IF NOT EXISTS idx_devoluciones_uniforme_fecha
			     ON devoluciones_uniforme (fecha DESC, created_at)`},
	}
	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
