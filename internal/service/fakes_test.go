package service_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"uniformes/internal/dto"
	"uniformes/internal/model"
	"uniformes/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repositories. Listing honours the same key / month / year filter
// and date-desc ordering as the gorm implementations.

func coincide(fecha time.Time, campo string, f dto.FiltroReporte) bool {
	if f.Clave != "" && !strings.Contains(campo, f.Clave) {
		return false
	}
	if f.Mes > 0 && int(fecha.Month()) != f.Mes {
		return false
	}
	if f.Anio > 0 && fecha.Year() != f.Anio {
		return false
	}
	return true
}

// ── Trabajadores ─────────────────────────────────────────────────────────────

type fakeTrabajadorRepo struct {
	byDNI     map[string]*model.Trabajador
	createErr error
}

var _ repository.TrabajadorRepository = (*fakeTrabajadorRepo)(nil)

func newFakeTrabajadorRepo(ts ...model.Trabajador) *fakeTrabajadorRepo {
	r := &fakeTrabajadorRepo{byDNI: map[string]*model.Trabajador{}}
	for i := range ts {
		t := ts[i]
		t.ID = uuid.New()
		r.byDNI[t.DNI] = &t
	}
	return r
}

func (r *fakeTrabajadorRepo) Create(_ context.Context, t *model.Trabajador) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.byDNI[t.DNI]; ok {
		return gorm.ErrDuplicatedKey
	}
	t.ID = uuid.New()
	cp := *t
	r.byDNI[t.DNI] = &cp
	return nil
}

func (r *fakeTrabajadorRepo) FindByDNI(_ context.Context, dni string) (*model.Trabajador, error) {
	t, ok := r.byDNI[dni]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTrabajadorRepo) FindByDNIs(_ context.Context, dnis []string) (map[string]model.Trabajador, error) {
	out := map[string]model.Trabajador{}
	for _, d := range dnis {
		if t, ok := r.byDNI[d]; ok {
			out[d] = *t
		}
	}
	return out, nil
}

func (r *fakeTrabajadorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byDNI)), nil
}

// ── Entregas ─────────────────────────────────────────────────────────────────

type fakeEntregaRepo struct {
	list []*model.Entrega
}

var _ repository.EntregaRepository = (*fakeEntregaRepo)(nil)

func (r *fakeEntregaRepo) Create(_ context.Context, e *model.Entrega) error {
	e.ID = uuid.New()
	e.CreatedAt = time.Now()
	cp := *e
	r.list = append(r.list, &cp)
	return nil
}

func (r *fakeEntregaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Entrega, error) {
	for _, e := range r.list {
		if e.ID == id {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEntregaRepo) UpdatePDFPath(_ context.Context, id uuid.UUID, path string) error {
	for _, e := range r.list {
		if e.ID == id {
			e.PDFPath = &path
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeEntregaRepo) List(_ context.Context, f dto.FiltroReporte) ([]model.Entrega, error) {
	var out []model.Entrega
	for _, e := range r.list {
		if coincide(e.Fecha, e.DNI, f) {
			out = append(out, *e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	return out, nil
}

func (r *fakeEntregaRepo) CountByPeriodo(_ context.Context, mes, anio int) (int64, error) {
	var n int64
	for _, e := range r.list {
		if coincide(e.Fecha, "", dto.FiltroReporte{Mes: mes, Anio: anio}) {
			n++
		}
	}
	return n, nil
}

// ── Lavanderia ───────────────────────────────────────────────────────────────

type fakeLavanderiaRepo struct {
	envios       []*model.EnvioLavanderia
	devoluciones []*model.DevolucionLavanderia
	createErr    error
}

var _ repository.LavanderiaRepository = (*fakeLavanderiaRepo)(nil)

func (r *fakeLavanderiaRepo) CreateEnvio(_ context.Context, e *model.EnvioLavanderia) error {
	if r.createErr != nil {
		return r.createErr
	}
	for _, x := range r.envios {
		if x.NumeroGuia == e.NumeroGuia {
			return gorm.ErrDuplicatedKey
		}
	}
	e.ID = uuid.New()
	cp := *e
	r.envios = append(r.envios, &cp)
	return nil
}

func (r *fakeLavanderiaRepo) FindEnvioByGuia(_ context.Context, guia string) (*model.EnvioLavanderia, error) {
	for _, e := range r.envios {
		if e.NumeroGuia == guia {
			cp := *e
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeLavanderiaRepo) ListEnviosRecientes(ctx context.Context, limit int) ([]model.EnvioLavanderia, error) {
	all, _ := r.ListEnvios(ctx, dto.FiltroReporte{})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeLavanderiaRepo) ListEnvios(_ context.Context, f dto.FiltroReporte) ([]model.EnvioLavanderia, error) {
	var out []model.EnvioLavanderia
	for _, e := range r.envios {
		if coincide(e.Fecha, e.NumeroGuia, f) {
			out = append(out, *e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	return out, nil
}

func (r *fakeLavanderiaRepo) CreateDevolucion(_ context.Context, d *model.DevolucionLavanderia) error {
	d.ID = uuid.New()
	cp := *d
	r.devoluciones = append(r.devoluciones, &cp)
	return nil
}

func (r *fakeLavanderiaRepo) ListDevolucionesByGuia(ctx context.Context, guia string) ([]model.DevolucionLavanderia, error) {
	return r.ListDevolucionesByGuias(ctx, []string{guia})
}

func (r *fakeLavanderiaRepo) ListDevolucionesByGuias(_ context.Context, guias []string) ([]model.DevolucionLavanderia, error) {
	set := map[string]bool{}
	for _, g := range guias {
		set[g] = true
	}
	var out []model.DevolucionLavanderia
	for _, d := range r.devoluciones {
		if set[d.NumeroGuia] {
			out = append(out, *d)
		}
	}
	return out, nil
}

// addEnvioRaw stores a shipment bypassing the service, e.g. with unreadable items.
func (r *fakeLavanderiaRepo) addEnvioRaw(guia string, fecha time.Time, itemsJSON string) {
	r.envios = append(r.envios, &model.EnvioLavanderia{
		ID: uuid.New(), NumeroGuia: guia, Fecha: fecha, ItemsJSON: itemsJSON,
	})
}

func (r *fakeLavanderiaRepo) addDevolucionRaw(guia string, fecha time.Time, itemsJSON string) {
	r.devoluciones = append(r.devoluciones, &model.DevolucionLavanderia{
		ID: uuid.New(), NumeroGuia: guia, Fecha: fecha, ItemsJSON: itemsJSON, Estado: "Parcial",
	})
}

// ── Devoluciones de uniforme ─────────────────────────────────────────────────

type fakeDevolucionUniformeRepo struct {
	list []*model.DevolucionUniforme
}

var _ repository.DevolucionUniformeRepository = (*fakeDevolucionUniformeRepo)(nil)

func (r *fakeDevolucionUniformeRepo) Create(_ context.Context, d *model.DevolucionUniforme) error {
	d.ID = uuid.New()
	cp := *d
	r.list = append(r.list, &cp)
	return nil
}

func (r *fakeDevolucionUniformeRepo) List(_ context.Context, f dto.FiltroReporte) ([]model.DevolucionUniforme, error) {
	var out []model.DevolucionUniforme
	for _, d := range r.list {
		if coincide(d.Fecha, d.DNI, f) {
			out = append(out, *d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	return out, nil
}

// ── Renderer ─────────────────────────────────────────────────────────────────

type fakeRenderer struct {
	dir   string
	err   error
	actas []model.ActaEntrega
}

func (r *fakeRenderer) Renderizar(_ context.Context, acta model.ActaEntrega) (string, error) {
	r.actas = append(r.actas, acta)
	if r.err != nil {
		return "", r.err
	}
	return r.dir + "/delivery_" + acta.EntregaID.String() + ".pdf", nil
}

var errRender = errors.New("disco lleno")

// ── Helpers ──────────────────────────────────────────────────────────────────

func items(pairs ...any) []dto.PrendaRequest {
	out := make([]dto.PrendaRequest, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, dto.PrendaRequest{Nombre: pairs[i].(string), Cantidad: pairs[i+1].(int)})
	}
	return out
}

func fecha(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
	return &t
}
