package repository

import (
	"context"

	"uniformes/internal/model"

	"gorm.io/gorm"
)

type TrabajadorRepository interface {
	Create(ctx context.Context, t *model.Trabajador) error
	FindByDNI(ctx context.Context, dni string) (*model.Trabajador, error)
	// FindByDNIs returns the workers that exist among dnis, keyed by dni.
	FindByDNIs(ctx context.Context, dnis []string) (map[string]model.Trabajador, error)
	Count(ctx context.Context) (int64, error)
}

type trabajadorRepo struct{ db *gorm.DB }

func NewTrabajadorRepository(db *gorm.DB) TrabajadorRepository { return &trabajadorRepo{db: db} }

func (r *trabajadorRepo) Create(ctx context.Context, t *model.Trabajador) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *trabajadorRepo) FindByDNI(ctx context.Context, dni string) (*model.Trabajador, error) {
	var t model.Trabajador
	err := r.db.WithContext(ctx).Where("dni = ?", dni).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *trabajadorRepo) FindByDNIs(ctx context.Context, dnis []string) (map[string]model.Trabajador, error) {
	out := make(map[string]model.Trabajador, len(dnis))
	if len(dnis) == 0 {
		return out, nil
	}
	var list []model.Trabajador
	if err := r.db.WithContext(ctx).Where("dni IN ?", dnis).Find(&list).Error; err != nil {
		return nil, err
	}
	for _, t := range list {
		out[t.DNI] = t
	}
	return out, nil
}

func (r *trabajadorRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Trabajador{}).Count(&n).Error
	return n, err
}
