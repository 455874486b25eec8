package service_test

import (
	"context"
	"testing"

	"uniformes/internal/dto"
	"uniformes/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarDevolucionUniforme(t *testing.T) {
	repo := &fakeDevolucionUniformeRepo{}
	svc := service.NewDevolucionUniformeService(repo, newFakeTrabajadorRepo(trabajadorDemo()))
	obs := "Polo con desgaste"

	resp, err := svc.Registrar(context.Background(), dto.RegistrarDevolucionUniformeRequest{
		DNI: "12345678", Items: items("Polo", 1), Observaciones: &obs,
	})

	require.NoError(t, err)
	assert.Equal(t, "Devolución registrada exitosamente", resp.Mensaje)
	require.Len(t, repo.list, 1)
	assert.Equal(t, resp.ID, repo.list[0].ID.String())
	assert.Equal(t, "Polo con desgaste", *repo.list[0].Observaciones)
}

func TestRegistrarDevolucionUniforme_TrabajadorInexistente(t *testing.T) {
	repo := &fakeDevolucionUniformeRepo{}
	svc := service.NewDevolucionUniformeService(repo, newFakeTrabajadorRepo())

	_, err := svc.Registrar(context.Background(), dto.RegistrarDevolucionUniformeRequest{DNI: "1", Items: items("Polo", 1)})

	assert.ErrorIs(t, err, service.ErrNoEncontrado)
	assert.Empty(t, repo.list)
}

func TestReporteDevolucionesUniforme(t *testing.T) {
	ctx := context.Background()
	repo := &fakeDevolucionUniformeRepo{}
	svc := service.NewDevolucionUniformeService(repo, newFakeTrabajadorRepo(trabajadorDemo()))
	_, err := svc.Registrar(ctx, dto.RegistrarDevolucionUniformeRequest{DNI: "12345678", Items: items("Polo", 1, "Casco", 1)})
	require.NoError(t, err)

	rows, omitidos, err := svc.Reporte(ctx, dto.FiltroReporte{Clave: "1234"})

	require.NoError(t, err)
	assert.Zero(t, omitidos)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana Quispe", rows[0].Usuario)
	assert.Equal(t, "1 Polo, 1 Casco", rows[0].Items)
	assert.Nil(t, rows[0].Observaciones)

	rows, _, err = svc.Reporte(ctx, dto.FiltroReporte{Clave: "999"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}
