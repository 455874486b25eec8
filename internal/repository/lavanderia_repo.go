package repository

import (
	"context"

	"uniformes/internal/dto"
	"uniformes/internal/model"

	"gorm.io/gorm"
)

// LavanderiaRepository persists outbound shipments and their returns.
type LavanderiaRepository interface {
	CreateEnvio(ctx context.Context, e *model.EnvioLavanderia) error
	FindEnvioByGuia(ctx context.Context, guia string) (*model.EnvioLavanderia, error)
	ListEnviosRecientes(ctx context.Context, limit int) ([]model.EnvioLavanderia, error)
	ListEnvios(ctx context.Context, filtro dto.FiltroReporte) ([]model.EnvioLavanderia, error)

	CreateDevolucion(ctx context.Context, d *model.DevolucionLavanderia) error
	ListDevolucionesByGuia(ctx context.Context, guia string) ([]model.DevolucionLavanderia, error)
	ListDevolucionesByGuias(ctx context.Context, guias []string) ([]model.DevolucionLavanderia, error)
}

type lavanderiaRepo struct{ db *gorm.DB }

func NewLavanderiaRepository(db *gorm.DB) LavanderiaRepository { return &lavanderiaRepo{db: db} }

func (r *lavanderiaRepo) CreateEnvio(ctx context.Context, e *model.EnvioLavanderia) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *lavanderiaRepo) FindEnvioByGuia(ctx context.Context, guia string) (*model.EnvioLavanderia, error) {
	var e model.EnvioLavanderia
	err := r.db.WithContext(ctx).Where("numero_guia = ?", guia).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *lavanderiaRepo) ListEnviosRecientes(ctx context.Context, limit int) ([]model.EnvioLavanderia, error) {
	var list []model.EnvioLavanderia
	err := r.db.WithContext(ctx).
		Order("fecha DESC").Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *lavanderiaRepo) ListEnvios(ctx context.Context, filtro dto.FiltroReporte) ([]model.EnvioLavanderia, error) {
	var list []model.EnvioLavanderia
	err := aplicarFiltro(r.db.WithContext(ctx).Model(&model.EnvioLavanderia{}), "numero_guia", filtro).
		Find(&list).Error
	return list, err
}

func (r *lavanderiaRepo) CreateDevolucion(ctx context.Context, d *model.DevolucionLavanderia) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *lavanderiaRepo) ListDevolucionesByGuia(ctx context.Context, guia string) ([]model.DevolucionLavanderia, error) {
	var list []model.DevolucionLavanderia
	err := r.db.WithContext(ctx).
		Where("numero_guia = ?", guia).
		Order("fecha ASC").Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *lavanderiaRepo) ListDevolucionesByGuias(ctx context.Context, guias []string) ([]model.DevolucionLavanderia, error) {
	var list []model.DevolucionLavanderia
	if len(guias) == 0 {
		return list, nil
	}
	err := r.db.WithContext(ctx).
		Where("numero_guia IN ?", guias).
		Order("fecha ASC").Order("created_at ASC").
		Find(&list).Error
	return list, err
}
