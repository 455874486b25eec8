package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"uniformes/internal/dto"
	"uniformes/internal/metrics"
	"uniformes/internal/model"
	"uniformes/internal/repository"

	"github.com/rs/zerolog/log"
)

const sinPendientes = "Ninguna"

// LavanderiaService handles the laundry send/return cycle.
type LavanderiaService interface {
	CrearEnvio(ctx context.Context, req dto.CrearEnvioRequest) (*dto.EnvioResponse, error)
	ObtenerEnvio(ctx context.Context, guia string) (*dto.EnvioResponse, error)
	ListarRecientes(ctx context.Context) ([]dto.EnvioResponse, error)
	Estado(ctx context.Context, guia string) (*dto.EstadoEnvioResponse, error)
	RegistrarDevolucion(ctx context.Context, req dto.RegistrarDevolucionRequest) (*dto.DevolucionRegistradaResponse, error)
	Reporte(ctx context.Context, filtro dto.FiltroReporte) (*dto.LavanderiaReporte, error)
}

type lavanderiaService struct {
	repo            repository.LavanderiaRepository
	limiteRecientes int
	now             func() time.Time
}

func NewLavanderiaService(repo repository.LavanderiaRepository, limiteRecientes int) LavanderiaService {
	if limiteRecientes <= 0 {
		limiteRecientes = 10
	}
	return &lavanderiaService{repo: repo, limiteRecientes: limiteRecientes, now: time.Now}
}

// ── CrearEnvio ────────────────────────────────────────────────────────────────

func (s *lavanderiaService) CrearEnvio(ctx context.Context, req dto.CrearEnvioRequest) (*dto.EnvioResponse, error) {
	guia := strings.TrimSpace(req.NumeroGuia)
	if guia == "" {
		return nil, fmt.Errorf("%w: numero de guia vacio", ErrValidacion)
	}
	if req.Peso != nil && req.Peso.IsNegative() {
		return nil, fmt.Errorf("%w: peso negativo", ErrValidacion)
	}
	prendas, err := prendasDeSolicitud(req.Items)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindEnvioByGuia(ctx, guia); err == nil {
		return nil, fmt.Errorf("%w: número de guía %s", ErrConflicto, guia)
	} else if !esNoEncontrado(err) {
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
	envio := &model.EnvioLavanderia{
		NumeroGuia: guia,
		Fecha:      fecha,
		ItemsJSON:  raw,
		Peso:       req.Peso,
	}
	if err := s.repo.CreateEnvio(ctx, envio); err != nil {
		if esDuplicado(err) {
			return nil, fmt.Errorf("%w: número de guía %s", ErrConflicto, guia)
		}
		return nil, err
	}
	metrics.EnviosLavanderiaTotal.Inc()

	resp := envioToResponse(envio, prendas, Conciliar(prendas, nil).Estado)
	return &resp, nil
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *lavanderiaService) ObtenerEnvio(ctx context.Context, guia string) (*dto.EnvioResponse, error) {
	envio, enviado, err := s.buscarEnvio(ctx, guia)
	if err != nil {
		return nil, err
	}
	devs, err := s.repo.ListDevolucionesByGuia(ctx, envio.NumeroGuia)
	if err != nil {
		return nil, err
	}
	devoluciones, _, omitidos := prendasDeDevoluciones(devs)
	registrarOmitidos("lavanderia_guia", omitidos)

	resp := envioToResponse(envio, enviado, Conciliar(enviado, devoluciones).Estado)
	return &resp, nil
}

func (s *lavanderiaService) ListarRecientes(ctx context.Context) ([]dto.EnvioResponse, error) {
	envios, err := s.repo.ListEnviosRecientes(ctx, s.limiteRecientes)
	if err != nil {
		return nil, err
	}
	porGuia, err := s.devolucionesPorGuia(ctx, envios)
	if err != nil {
		return nil, err
	}

	result := make([]dto.EnvioResponse, 0, len(envios))
	omitidos := 0
	for i := range envios {
		e := &envios[i]
		enviado, err := e.Prendas()
		if err != nil {
			omitidos++
			continue
		}
		devoluciones, _, n := prendasDeDevoluciones(porGuia[e.NumeroGuia])
		omitidos += n
		result = append(result, envioToResponse(e, enviado, Conciliar(enviado, devoluciones).Estado))
	}
	registrarOmitidos("lavanderia_recientes", omitidos)
	return result, nil
}

// Estado returns the per-item balance of one shipment, computed from every
// return recorded so far.
func (s *lavanderiaService) Estado(ctx context.Context, guia string) (*dto.EstadoEnvioResponse, error) {
	envio, enviado, err := s.buscarEnvio(ctx, guia)
	if err != nil {
		return nil, err
	}
	devs, err := s.repo.ListDevolucionesByGuia(ctx, envio.NumeroGuia)
	if err != nil {
		return nil, err
	}
	devoluciones, _, omitidos := prendasDeDevoluciones(devs)
	registrarOmitidos("lavanderia_estado", omitidos)

	c := Conciliar(enviado, devoluciones)
	return &dto.EstadoEnvioResponse{
		NumeroGuia: envio.NumeroGuia,
		Estado:     c.Estado.String(),
		Items:      lineasToResponse(c.Lineas),
	}, nil
}

// ── RegistrarDevolucion ───────────────────────────────────────────────────────
// Returns are never checked against the sent quantities; an over-return is
// stored and reported as an excess.

func (s *lavanderiaService) RegistrarDevolucion(ctx context.Context, req dto.RegistrarDevolucionRequest) (*dto.DevolucionRegistradaResponse, error) {
	envio, enviado, err := s.buscarEnvio(ctx, req.NumeroGuia)
	if err != nil {
		return nil, err
	}
	previas, err := s.repo.ListDevolucionesByGuia(ctx, envio.NumeroGuia)
	if err != nil {
		return nil, err
	}
	devoluciones, _, omitidos := prendasDeDevoluciones(previas)
	registrarOmitidos("lavanderia_devolucion", omitidos)

	prendas, err := prendasDeSolicitud(req.Items)
	if err != nil {
		return nil, err
	}
	c := Conciliar(enviado, append(devoluciones, prendas))

	raw, err := model.CodificarPrendas(prendas)
	if err != nil {
		return nil, err
	}
	obs := observacionDevolucion(req.Observacion, c)
	dev := &model.DevolucionLavanderia{
		NumeroGuia:  envio.NumeroGuia,
		Fecha:       s.now(),
		ItemsJSON:   raw,
		Estado:      c.Estado.String(),
		Observacion: &obs,
	}
	if err := s.repo.CreateDevolucion(ctx, dev); err != nil {
		return nil, err
	}
	metrics.DevolucionesLavanderiaTotal.Inc()

	if exc := c.Excedentes(); len(exc) > 0 {
		log.Warn().
			Str("guide_number", envio.NumeroGuia).
			Str("excedente", model.FormatearPrendas(exc)).
			Msg("lavanderia: devolución supera lo enviado")
	}

	return &dto.DevolucionRegistradaResponse{
		ID:          dev.ID.String(),
		NumeroGuia:  envio.NumeroGuia,
		Estado:      c.Estado.String(),
		Observacion: obs,
		Items:       lineasToResponse(c.Lineas),
	}, nil
}

// ── Reporte ───────────────────────────────────────────────────────────────────

func (s *lavanderiaService) Reporte(ctx context.Context, filtro dto.FiltroReporte) (*dto.LavanderiaReporte, error) {
	envios, err := s.repo.ListEnvios(ctx, filtro)
	if err != nil {
		return nil, err
	}
	porGuia, err := s.devolucionesPorGuia(ctx, envios)
	if err != nil {
		return nil, err
	}

	rep := &dto.LavanderiaReporte{Filas: make([]dto.LavanderiaReporteItem, 0, len(envios))}
	for i := range envios {
		e := &envios[i]
		enviado, err := e.Prendas()
		if err != nil {
			log.Warn().Err(err).Str("guide_number", e.NumeroGuia).Msg("lavanderia: envío con items ilegibles omitido")
			rep.Omitidos++
			continue
		}
		devoluciones, ultima, n := prendasDeDevoluciones(porGuia[e.NumeroGuia])
		rep.Omitidos += n

		c := Conciliar(enviado, devoluciones)
		fila := dto.LavanderiaReporteItem{
			NumeroGuia:   e.NumeroGuia,
			Fecha:        e.Fecha,
			FechaRetorno: ultima,
			Estado:       c.Estado.String(),
			Peso:         e.Peso,
			Items:        model.FormatearPrendas(enviado),
			Pendientes:   sinPendientes,
		}
		if p := c.Pendientes(); len(p) > 0 {
			fila.Pendientes = model.FormatearPrendas(p)
		}
		if exc := c.Excedentes(); len(exc) > 0 {
			fila.Excedentes = model.FormatearPrendas(exc)
		}
		rep.Filas = append(rep.Filas, fila)
	}
	registrarOmitidos("lavanderia_reporte", rep.Omitidos)
	return rep, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// buscarEnvio loads a shipment and decodes its items. A shipment whose items
// cannot be read is an unexpected failure here: there is nothing to reconcile.
func (s *lavanderiaService) buscarEnvio(ctx context.Context, guia string) (*model.EnvioLavanderia, []model.Prenda, error) {
	guia = strings.TrimSpace(guia)
	envio, err := s.repo.FindEnvioByGuia(ctx, guia)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, nil, fmt.Errorf("%w: guía %s", ErrNoEncontrado, guia)
		}
		return nil, nil, err
	}
	enviado, err := envio.Prendas()
	if err != nil {
		return nil, nil, fmt.Errorf("envío %s: %w", guia, err)
	}
	return envio, enviado, nil
}

func (s *lavanderiaService) devolucionesPorGuia(ctx context.Context, envios []model.EnvioLavanderia) (map[string][]model.DevolucionLavanderia, error) {
	guias := make([]string, 0, len(envios))
	for _, e := range envios {
		guias = append(guias, e.NumeroGuia)
	}
	devs, err := s.repo.ListDevolucionesByGuias(ctx, guias)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]model.DevolucionLavanderia, len(envios))
	for _, d := range devs {
		out[d.NumeroGuia] = append(out[d.NumeroGuia], d)
	}
	return out, nil
}

// prendasDeDevoluciones decodes every readable return, skipping the rest.
// It also returns the date of the latest readable return and the skip count.
func prendasDeDevoluciones(devs []model.DevolucionLavanderia) ([][]model.Prenda, *time.Time, int) {
	out := make([][]model.Prenda, 0, len(devs))
	var ultima *time.Time
	omitidos := 0
	for i := range devs {
		p, err := devs[i].Prendas()
		if err != nil {
			log.Warn().Err(err).Str("devolucion_id", devs[i].ID.String()).Msg("lavanderia: devolución con items ilegibles omitida")
			omitidos++
			continue
		}
		out = append(out, p)
		if ultima == nil || devs[i].Fecha.After(*ultima) {
			f := devs[i].Fecha
			ultima = &f
		}
	}
	return out, ultima, omitidos
}

func observacionDevolucion(texto *string, c Conciliacion) string {
	if texto != nil && strings.TrimSpace(*texto) != "" {
		return strings.TrimSpace(*texto)
	}
	var obs string
	if p := c.Pendientes(); len(p) > 0 {
		obs = "Faltan: " + model.FormatearPrendas(p)
	} else {
		obs = "Devolución completa"
	}
	if exc := c.Excedentes(); len(exc) > 0 {
		obs += "; Excedente: " + model.FormatearPrendas(exc)
	}
	return obs
}

func registrarOmitidos(operacion string, n int) {
	if n == 0 {
		return
	}
	metrics.RegistrosOmitidosTotal.WithLabelValues(operacion).Add(float64(n))
	log.Warn().Str("operacion", operacion).Int("omitidos", n).Msg("registros con items ilegibles omitidos")
}

func envioToResponse(e *model.EnvioLavanderia, prendas []model.Prenda, estado model.EstadoLavanderia) dto.EnvioResponse {
	return dto.EnvioResponse{
		ID:         e.ID.String(),
		NumeroGuia: e.NumeroGuia,
		Fecha:      e.Fecha,
		Items:      prendasToResponse(prendas),
		ItemsJSON:  e.ItemsJSON,
		Peso:       e.Peso,
		Estado:     estado.String(),
	}
}

func prendasToResponse(prendas []model.Prenda) []dto.PrendaResponse {
	out := make([]dto.PrendaResponse, 0, len(prendas))
	for _, p := range prendas {
		out = append(out, dto.PrendaResponse{Nombre: p.Nombre, Cantidad: p.Cantidad})
	}
	return out
}

func lineasToResponse(lineas []LineaConciliacion) []dto.LineaEstadoResponse {
	out := make([]dto.LineaEstadoResponse, 0, len(lineas))
	for _, l := range lineas {
		out = append(out, dto.LineaEstadoResponse{
			Nombre:    l.Nombre,
			Enviado:   l.Enviado,
			Devuelto:  l.Devuelto,
			Pendiente: l.Pendiente,
		})
	}
	return out
}
