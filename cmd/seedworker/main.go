// cmd/seedworker/main.go: crea o actualiza un trabajador de demo.
// Uso: go run ./cmd/seedworker [--dni 12345678] [--config app.env]
package main

import (
	"context"
	"os"
	"time"

	"uniformes/internal/config"
	"uniformes/internal/infra"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		cfgFile  string
		dni      string
		nombre   string
		apellido string
		contrato string
	)
	cmd := &cobra.Command{
		Use:   "seedworker",
		Short: "Crea o actualiza un trabajador de demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			db, err := infra.NewDatabase(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			if err := infra.Migrate(db); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			result := db.WithContext(ctx).Exec(`
				INSERT INTO trabajadores (dni, nombre, apellido, tipo_contrato, created_at)
				VALUES (?, ?, ?, ?, NOW())
				ON CONFLICT (dni) DO UPDATE
				SET nombre = EXCLUDED.nombre,
				    apellido = EXCLUDED.apellido,
				    tipo_contrato = EXCLUDED.tipo_contrato
			`, dni, nombre, apellido, contrato)
			if result.Error != nil {
				return result.Error
			}
			log.Info().Str("dni", dni).Msg("trabajador creado/actualizado")
			return nil
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "env file (default ./.env)")
	cmd.Flags().StringVar(&dni, "dni", "12345678", "DNI del trabajador")
	cmd.Flags().StringVar(&nombre, "name", "Trabajador", "nombre")
	cmd.Flags().StringVar(&apellido, "surname", "Demo", "apellido")
	cmd.Flags().StringVar(&contrato, "contract-type", "Temporal", "tipo de contrato")

	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("seedworker")
	}
}
