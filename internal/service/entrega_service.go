package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"uniformes/internal/dto"
	"uniformes/internal/metrics"
	"uniformes/internal/model"
	"uniformes/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RenderizadorActa produces the signed-receipt document for a delivery and
// returns where it was stored. Implemented by infra.PDFRenderer.
type RenderizadorActa interface {
	Renderizar(ctx context.Context, acta model.ActaEntrega) (string, error)
}

type EntregaService interface {
	Registrar(ctx context.Context, req dto.RegistrarEntregaRequest) (*dto.EntregaCreadaResponse, error)
	ObtenerPDFPath(ctx context.Context, id uuid.UUID) (string, error)
	// Reporte also returns how many stored deliveries were skipped as unreadable.
	Reporte(ctx context.Context, filtro dto.FiltroReporte) ([]dto.EntregaReporteItem, int, error)
}

type entregaService struct {
	repo         repository.EntregaRepository
	trabajadores repository.TrabajadorRepository
	renderer     RenderizadorActa
	now          func() time.Time
}

func NewEntregaService(repo repository.EntregaRepository, trabajadores repository.TrabajadorRepository, renderer RenderizadorActa) EntregaService {
	return &entregaService{repo: repo, trabajadores: trabajadores, renderer: renderer, now: time.Now}
}

func pdfURL(id uuid.UUID) string { return "/api/deliveries/" + id.String() + "/pdf" }

// ── Registrar ─────────────────────────────────────────────────────────────────
// The delivery is committed before rendering. If rendering fails the record
// stays with a nil PDFPath and the caller gets ErrRenderizado.

func (s *entregaService) Registrar(ctx context.Context, req dto.RegistrarEntregaRequest) (*dto.EntregaCreadaResponse, error) {
	trabajador, err := buscarTrabajador(ctx, s.trabajadores, req.DNI)
	if err != nil {
		return nil, err
	}

	prendas, err := prendasDeSolicitud(req.Items)
	if err != nil {
		return nil, err
	}
	raw, err := model.CodificarPrendas(prendas)
	if err != nil {
		return nil, err
	}
	fecha := s.now()
	if req.Fecha != nil {
		fecha = *req.Fecha
	}

	entrega := &model.Entrega{
		DNI:       trabajador.DNI,
		Fecha:     fecha,
		ItemsJSON: raw,
	}
	if err := s.repo.Create(ctx, entrega); err != nil {
		return nil, err
	}
	metrics.EntregasTotal.Inc()

	path, err := s.renderer.Renderizar(ctx, model.ActaEntrega{
		EntregaID:  entrega.ID,
		Trabajador: *trabajador,
		Prendas:    prendas,
		Fecha:      fecha,
	})
	if err != nil {
		metrics.ActasFallidasTotal.Inc()
		log.Error().Err(err).Str("entrega_id", entrega.ID.String()).Msg("entrega: no se pudo generar el acta")
		return nil, fmt.Errorf("%w: entrega %s", ErrRenderizado, entrega.ID)
	}
	if err := s.repo.UpdatePDFPath(ctx, entrega.ID, path); err != nil {
		return nil, err
	}

	log.Info().Str("entrega_id", entrega.ID.String()).Str("dni", entrega.DNI).Msg("entrega registrada")
	return &dto.EntregaCreadaResponse{EntregaID: entrega.ID.String(), PDFUrl: pdfURL(entrega.ID)}, nil
}

// ObtenerPDFPath resolves the stored receipt of a delivery. A delivery that
// was never rendered, or whose file is gone, is reported as not found.
func (s *entregaService) ObtenerPDFPath(ctx context.Context, id uuid.UUID) (string, error) {
	entrega, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if esNoEncontrado(err) {
			return "", fmt.Errorf("%w: entrega %s", ErrNoEncontrado, id)
		}
		return "", err
	}
	if entrega.PDFPath == nil || *entrega.PDFPath == "" {
		return "", fmt.Errorf("%w: acta de la entrega %s", ErrNoEncontrado, id)
	}
	if _, err := os.Stat(*entrega.PDFPath); err != nil {
		return "", fmt.Errorf("%w: archivo del acta %s", ErrNoEncontrado, id)
	}
	return *entrega.PDFPath, nil
}

// ── Reporte ───────────────────────────────────────────────────────────────────

func (s *entregaService) Reporte(ctx context.Context, filtro dto.FiltroReporte) ([]dto.EntregaReporteItem, int, error) {
	filtro.Clave = strings.TrimSpace(filtro.Clave)
	entregas, err := s.repo.List(ctx, filtro)
	if err != nil {
		return nil, 0, err
	}

	dnis := make([]string, 0, len(entregas))
	for _, e := range entregas {
		dnis = append(dnis, e.DNI)
	}
	nombre, err := nombresPorDNI(ctx, s.trabajadores, dnis)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.EntregaReporteItem, 0, len(entregas))
	omitidos := 0
	for i := range entregas {
		e := &entregas[i]
		prendas, err := e.Prendas()
		if err != nil {
			log.Warn().Err(err).Str("entrega_id", e.ID.String()).Msg("entrega con items ilegibles omitida")
			omitidos++
			continue
		}
		item := dto.EntregaReporteItem{
			ID:      e.ID.String(),
			Usuario: nombre(e.DNI),
			DNI:     e.DNI,
			Fecha:   e.Fecha,
			Items:   model.FormatearPrendas(prendas),
		}
		if e.PDFPath != nil {
			u := pdfURL(e.ID)
			item.PDFUrl = &u
		}
		out = append(out, item)
	}
	registrarOmitidos("entregas_reporte", omitidos)
	return out, omitidos, nil
}
