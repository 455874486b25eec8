package repository

import (
	"context"

	"uniformes/internal/dto"
	"uniformes/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntregaRepository interface {
	Create(ctx context.Context, e *model.Entrega) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Entrega, error)
	UpdatePDFPath(ctx context.Context, id uuid.UUID, path string) error
	List(ctx context.Context, filtro dto.FiltroReporte) ([]model.Entrega, error)
	CountByPeriodo(ctx context.Context, mes, anio int) (int64, error)
}

type entregaRepo struct{ db *gorm.DB }

func NewEntregaRepository(db *gorm.DB) EntregaRepository { return &entregaRepo{db: db} }

func (r *entregaRepo) Create(ctx context.Context, e *model.Entrega) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *entregaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Entrega, error) {
	var e model.Entrega
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *entregaRepo) UpdatePDFPath(ctx context.Context, id uuid.UUID, path string) error {
	return r.db.WithContext(ctx).Model(&model.Entrega{}).Where("id = ?", id).Update("pdf_path", path).Error
}

func (r *entregaRepo) List(ctx context.Context, filtro dto.FiltroReporte) ([]model.Entrega, error) {
	var list []model.Entrega
	err := aplicarFiltro(r.db.WithContext(ctx).Model(&model.Entrega{}), "dni", filtro).Find(&list).Error
	return list, err
}

func (r *entregaRepo) CountByPeriodo(ctx context.Context, mes, anio int) (int64, error) {
	var n int64
	err := aplicarPeriodo(r.db.WithContext(ctx).Model(&model.Entrega{}), mes, anio).Count(&n).Error
	return n, err
}
