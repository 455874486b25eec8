package service_test

import (
	"context"
	"testing"

	"uniformes/internal/dto"
	"uniformes/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoria(t *testing.T) {
	casos := map[string]string{
		"Polo Deportivo":   "polo",
		"POLO":             "polo",
		"Pantalón Cargo":   "pantalon",
		"pantalon":         "pantalon",
		"Chaqueta térmica": "chaqueta",
		"Polo y Pantalon":  "polo",
	}
	for nombre, esperado := range casos {
		c, ok := service.Categoria(nombre)
		assert.True(t, ok, nombre)
		assert.Equal(t, esperado, c, nombre)
	}

	_, ok := service.Categoria("Casco")
	assert.False(t, ok)
}

func TestEstadisticas(t *testing.T) {
	ctx := context.Background()
	trabajadores := newFakeTrabajadorRepo(trabajadorDemo())
	entregas := &fakeEntregaRepo{}
	lav := &fakeLavanderiaRepo{}

	lavSvc := service.NewLavanderiaService(lav, 10)
	crearEnvio(t, lavSvc, "G1", fecha(2024, 5, 1), items("Polo Deportivo", 3, "Casco", 4, "Pantalón", 2))
	crearEnvio(t, lavSvc, "G2", fecha(2024, 5, 9), items("Chaqueta", 1))
	crearEnvio(t, lavSvc, "G3", fecha(2024, 6, 1), items("Polo", 10))
	_, err := lavSvc.RegistrarDevolucion(ctx, dto.RegistrarDevolucionRequest{NumeroGuia: "G2", Items: items("Chaqueta", 1)})
	require.NoError(t, err)

	entSvc := service.NewEntregaService(entregas, trabajadores, &fakeRenderer{dir: t.TempDir()})
	_, err = entSvc.Registrar(ctx, dto.RegistrarEntregaRequest{DNI: "12345678", Items: items("Polo", 1), Fecha: fecha(2024, 5, 3)})
	require.NoError(t, err)
	_, err = entSvc.Registrar(ctx, dto.RegistrarEntregaRequest{DNI: "12345678", Items: items("Polo", 1), Fecha: fecha(2023, 5, 3)})
	require.NoError(t, err)

	svc := service.NewEstadisticasService(trabajadores, entregas, lav)

	st, err := svc.Calcular(ctx, dto.FiltroReporte{Mes: 5, Anio: 2024})
	require.NoError(t, err)
	assert.Equal(t, int64(1), st.UsersCount)
	assert.Equal(t, int64(1), st.DeliveriesCount)
	assert.Equal(t, 2, st.LaundryTotalCount)
	assert.Equal(t, 1, st.LaundryActiveCount, "G2 is complete")
	assert.Equal(t, 3, st.PolosCount)
	assert.Equal(t, 2, st.PantalonesCount)
	assert.Equal(t, 1, st.ChaquetasCount)
	assert.Equal(t, map[string]int{"polo": 3, "pantalon": 2, "chaqueta": 1}, st.CategoryCounts)

	st, err = svc.Calcular(ctx, dto.FiltroReporte{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), st.DeliveriesCount)
	assert.Equal(t, 3, st.LaundryTotalCount)
	assert.Equal(t, 13, st.PolosCount)
}

func TestEstadisticas_EnvioIlegibleCuentaEnTotal(t *testing.T) {
	lav := &fakeLavanderiaRepo{}
	crearEnvio(t, service.NewLavanderiaService(lav, 10), "G1", fecha(2024, 5, 1), items("Polo", 2))
	lav.addEnvioRaw("ROTO", *fecha(2024, 5, 2), "{not json")

	svc := service.NewEstadisticasService(newFakeTrabajadorRepo(), &fakeEntregaRepo{}, lav)
	st, err := svc.Calcular(context.Background(), dto.FiltroReporte{Mes: 5, Anio: 2024})

	require.NoError(t, err)
	assert.Equal(t, 2, st.LaundryTotalCount)
	assert.Equal(t, 1, st.LaundryActiveCount)
	assert.Equal(t, 2, st.PolosCount)
}
