package infra

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"uniformes/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildActa(n int) model.ActaEntrega {
	prendas := make([]model.Prenda, 0, n)
	for i := 0; i < n; i++ {
		prendas = append(prendas, model.Prenda{Nombre: fmt.Sprintf("Pantalón talla %d", i), Cantidad: i + 1})
	}
	return model.ActaEntrega{
		EntregaID: uuid.New(),
		Trabajador: model.Trabajador{
			DNI: "12345678", Nombre: "María", Apellido: "Núñez", TipoContrato: "Regular PYA",
		},
		Prendas: prendas,
		Fecha:   time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestGenerarActaPDF_Exitoso(t *testing.T) {
	dir := t.TempDir()
	acta := buildActa(3)

	path, err := GenerarActaPDF(acta, dir)

	require.NoError(t, err)
	info, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.Greater(t, info.Size(), int64(500), "PDF should have content")
}

func TestGenerarActaPDF_NombreArchivo(t *testing.T) {
	acta := buildActa(1)

	path, err := GenerarActaPDF(acta, t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "delivery_"+acta.EntregaID.String()+".pdf", filepath.Base(path))
}

func TestGenerarActaPDF_VariasPaginas(t *testing.T) {
	dir := t.TempDir()

	corta, err := GenerarActaPDF(buildActa(2), dir)
	require.NoError(t, err)
	larga, err := GenerarActaPDF(buildActa(120), dir)
	require.NoError(t, err)

	ci, _ := os.Stat(corta)
	li, _ := os.Stat(larga)
	assert.Greater(t, li.Size(), ci.Size())
}

func TestGenerarActaPDF_CreaDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "actas", "2025")

	path, err := GenerarActaPDF(buildActa(1), dir)

	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestPDFRenderer_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPDFRenderer(t.TempDir()).Renderizar(ctx, buildActa(1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTruncar(t *testing.T) {
	assert.Equal(t, "Polo", truncar("Polo", 10))
	assert.Equal(t, "Chaq...", truncar("Chaqueta térmica", 7))
}
