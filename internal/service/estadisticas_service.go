package service

import (
	"context"
	"strings"
	"unicode"

	"uniformes/internal/dto"
	"uniformes/internal/model"
	"uniformes/internal/repository"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Dashboard categories, matched in this order. A name matching none of them
// is not counted.
var categorias = []string{"polo", "pantalon", "chaqueta"}

type EstadisticasService interface {
	Calcular(ctx context.Context, filtro dto.FiltroReporte) (*dto.EstadisticasResponse, error)
}

type estadisticasService struct {
	trabajadores repository.TrabajadorRepository
	entregas     repository.EntregaRepository
	lavanderia   repository.LavanderiaRepository
}

func NewEstadisticasService(
	trabajadores repository.TrabajadorRepository,
	entregas repository.EntregaRepository,
	lavanderia repository.LavanderiaRepository,
) EstadisticasService {
	return &estadisticasService{trabajadores: trabajadores, entregas: entregas, lavanderia: lavanderia}
}

// Calcular aggregates the dashboard counters. Month and year narrow deliveries
// and laundry shipments; the worker count is always global.
func (s *estadisticasService) Calcular(ctx context.Context, filtro dto.FiltroReporte) (*dto.EstadisticasResponse, error) {
	usuarios, err := s.trabajadores.Count(ctx)
	if err != nil {
		return nil, err
	}
	entregas, err := s.entregas.CountByPeriodo(ctx, filtro.Mes, filtro.Anio)
	if err != nil {
		return nil, err
	}

	envios, err := s.lavanderia.ListEnvios(ctx, dto.FiltroReporte{Mes: filtro.Mes, Anio: filtro.Anio})
	if err != nil {
		return nil, err
	}
	guias := make([]string, 0, len(envios))
	for _, e := range envios {
		guias = append(guias, e.NumeroGuia)
	}
	devs, err := s.lavanderia.ListDevolucionesByGuias(ctx, guias)
	if err != nil {
		return nil, err
	}
	porGuia := make(map[string][]model.DevolucionLavanderia, len(envios))
	for _, d := range devs {
		porGuia[d.NumeroGuia] = append(porGuia[d.NumeroGuia], d)
	}

	resp := &dto.EstadisticasResponse{
		UsersCount:      usuarios,
		DeliveriesCount: entregas,
		CategoryCounts:  make(map[string]int, len(categorias)),
	}
	for _, c := range categorias {
		resp.CategoryCounts[c] = 0
	}

	omitidos := 0
	for i := range envios {
		e := &envios[i]
		resp.LaundryTotalCount++
		enviado, err := e.Prendas()
		if err != nil {
			// Stored but unreadable: counted in the total, not in the rest.
			omitidos++
			continue
		}

		devoluciones, _, n := prendasDeDevoluciones(porGuia[e.NumeroGuia])
		omitidos += n
		if Conciliar(enviado, devoluciones).Estado != model.EstadoCompleto {
			resp.LaundryActiveCount++
		}

		for _, p := range enviado {
			if c, ok := Categoria(p.Nombre); ok {
				resp.CategoryCounts[c] += p.Cantidad
			}
		}
	}
	registrarOmitidos("estadisticas", omitidos)

	resp.PolosCount = resp.CategoryCounts["polo"]
	resp.PantalonesCount = resp.CategoryCounts["pantalon"]
	resp.ChaquetasCount = resp.CategoryCounts["chaqueta"]
	return resp, nil
}

// Categoria returns the first dashboard category whose keyword appears in the
// item name, ignoring case and accents ("Pantalón Cargo" is a pantalon).
func Categoria(nombre string) (string, bool) {
	plegado := plegar(nombre)
	for _, c := range categorias {
		if strings.Contains(plegado, c) {
			return c, true
		}
	}
	return "", false
}

// plegar strips combining marks and case-folds. Transformers and casers keep
// state, so both are built per call.
func plegar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	sinMarcas, _, err := transform.String(t, s)
	if err != nil {
		sinMarcas = s
	}
	return cases.Fold().String(sinMarcas)
}
