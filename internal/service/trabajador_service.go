package service

import (
	"context"
	"fmt"
	"strings"

	"uniformes/internal/dto"
	"uniformes/internal/model"
	"uniformes/internal/repository"
)

type TrabajadorService interface {
	Crear(ctx context.Context, req dto.CrearTrabajadorRequest) (*dto.TrabajadorResponse, error)
	ObtenerPorDNI(ctx context.Context, dni string) (*dto.TrabajadorResponse, error)
}

type trabajadorService struct {
	repo repository.TrabajadorRepository
}

func NewTrabajadorService(repo repository.TrabajadorRepository) TrabajadorService {
	return &trabajadorService{repo: repo}
}

func (s *trabajadorService) Crear(ctx context.Context, req dto.CrearTrabajadorRequest) (*dto.TrabajadorResponse, error) {
	dni := strings.TrimSpace(req.DNI)
	if dni == "" {
		return nil, fmt.Errorf("%w: dni vacio", ErrValidacion)
	}

	if _, err := s.repo.FindByDNI(ctx, dni); err == nil {
		return nil, fmt.Errorf("%w: DNI %s", ErrConflicto, dni)
	} else if !esNoEncontrado(err) {
		return nil, err
	}

	t := &model.Trabajador{
		DNI:          dni,
		Nombre:       strings.TrimSpace(req.Nombre),
		Apellido:     strings.TrimSpace(req.Apellido),
		TipoContrato: strings.TrimSpace(req.TipoContrato),
	}
	// The unique index still catches two concurrent creates of the same dni.
	if err := s.repo.Create(ctx, t); err != nil {
		if esDuplicado(err) {
			return nil, fmt.Errorf("%w: DNI %s", ErrConflicto, dni)
		}
		return nil, err
	}
	resp := trabajadorToResponse(t)
	return &resp, nil
}

func (s *trabajadorService) ObtenerPorDNI(ctx context.Context, dni string) (*dto.TrabajadorResponse, error) {
	t, err := buscarTrabajador(ctx, s.repo, dni)
	if err != nil {
		return nil, err
	}
	resp := trabajadorToResponse(t)
	return &resp, nil
}

// buscarTrabajador is shared by every service that starts from a dni.
func buscarTrabajador(ctx context.Context, repo repository.TrabajadorRepository, dni string) (*model.Trabajador, error) {
	dni = strings.TrimSpace(dni)
	t, err := repo.FindByDNI(ctx, dni)
	if err != nil {
		if esNoEncontrado(err) {
			return nil, fmt.Errorf("%w: trabajador con DNI %s", ErrNoEncontrado, dni)
		}
		return nil, err
	}
	return t, nil
}

// nombresPorDNI resolves display names for a report, "Desconocido" when the
// worker no longer exists.
func nombresPorDNI(ctx context.Context, repo repository.TrabajadorRepository, dnis []string) (func(string) string, error) {
	trabajadores, err := repo.FindByDNIs(ctx, dnis)
	if err != nil {
		return nil, err
	}
	return func(dni string) string {
		if t, ok := trabajadores[dni]; ok {
			return t.NombreCompleto()
		}
		return "Desconocido"
	}, nil
}

func trabajadorToResponse(t *model.Trabajador) dto.TrabajadorResponse {
	return dto.TrabajadorResponse{
		ID:           t.ID.String(),
		DNI:          t.DNI,
		Nombre:       t.Nombre,
		Apellido:     t.Apellido,
		TipoContrato: t.TipoContrato,
	}
}
