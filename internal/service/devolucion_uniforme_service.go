package service

import (
	"context"
	"strings"
	"time"

	"uniformes/internal/dto"
	"uniformes/internal/metrics"
	"uniformes/internal/model"
	"uniformes/internal/repository"

	"github.com/rs/zerolog/log"
)

const mensajeDevolucionUniforme = "Devolución registrada exitosamente"

type DevolucionUniformeService interface {
	Registrar(ctx context.Context, req dto.RegistrarDevolucionUniformeRequest) (*dto.DevolucionUniformeCreadaResponse, error)
	Reporte(ctx context.Context, filtro dto.FiltroReporte) ([]dto.DevolucionUniformeReporteItem, int, error)
}

type devolucionUniformeService struct {
	repo         repository.DevolucionUniformeRepository
	trabajadores repository.TrabajadorRepository
	now          func() time.Time
}

func NewDevolucionUniformeService(repo repository.DevolucionUniformeRepository, trabajadores repository.TrabajadorRepository) DevolucionUniformeService {
	return &devolucionUniformeService{repo: repo, trabajadores: trabajadores, now: time.Now}
}

func (s *devolucionUniformeService) Registrar(ctx context.Context, req dto.RegistrarDevolucionUniformeRequest) (*dto.DevolucionUniformeCreadaResponse, error) {
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
	d := &model.DevolucionUniforme{
		DNI:       trabajador.DNI,
		Fecha:     s.now(),
		ItemsJSON: raw,
	}
	if req.Observaciones != nil {
		if obs := strings.TrimSpace(*req.Observaciones); obs != "" {
			d.Observaciones = &obs
		}
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	metrics.DevolucionesUniformeTotal.Inc()

	return &dto.DevolucionUniformeCreadaResponse{Mensaje: mensajeDevolucionUniforme, ID: d.ID.String()}, nil
}

func (s *devolucionUniformeService) Reporte(ctx context.Context, filtro dto.FiltroReporte) ([]dto.DevolucionUniformeReporteItem, int, error) {
	filtro.Clave = strings.TrimSpace(filtro.Clave)
	devs, err := s.repo.List(ctx, filtro)
	if err != nil {
		return nil, 0, err
	}

	dnis := make([]string, 0, len(devs))
	for _, d := range devs {
		dnis = append(dnis, d.DNI)
	}
	nombre, err := nombresPorDNI(ctx, s.trabajadores, dnis)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.DevolucionUniformeReporteItem, 0, len(devs))
	omitidos := 0
	for i := range devs {
		d := &devs[i]
		prendas, err := d.Prendas()
		if err != nil {
			log.Warn().Err(err).Str("devolucion_id", d.ID.String()).Msg("devolución de uniforme con items ilegibles omitida")
			omitidos++
			continue
		}
		out = append(out, dto.DevolucionUniformeReporteItem{
			ID:            d.ID.String(),
			Usuario:       nombre(d.DNI),
			DNI:           d.DNI,
			Fecha:         d.Fecha,
			Items:         model.FormatearPrendas(prendas),
			Observaciones: d.Observaciones,
		})
	}
	registrarOmitidos("devoluciones_uniforme_reporte", omitidos)
	return out, omitidos, nil
}
