package repository

import (
	"context"

	"uniformes/internal/dto"
	"uniformes/internal/model"

	"gorm.io/gorm"
)

type DevolucionUniformeRepository interface {
	Create(ctx context.Context, d *model.DevolucionUniforme) error
	List(ctx context.Context, filtro dto.FiltroReporte) ([]model.DevolucionUniforme, error)
}

type devolucionUniformeRepo struct{ db *gorm.DB }

func NewDevolucionUniformeRepository(db *gorm.DB) DevolucionUniformeRepository {
	return &devolucionUniformeRepo{db: db}
}

func (r *devolucionUniformeRepo) Create(ctx context.Context, d *model.DevolucionUniforme) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *devolucionUniformeRepo) List(ctx context.Context, filtro dto.FiltroReporte) ([]model.DevolucionUniforme, error) {
	var list []model.DevolucionUniforme
	err := aplicarFiltro(r.db.WithContext(ctx).Model(&model.DevolucionUniforme{}), "dni", filtro).Find(&list).Error
	return list, err
}
