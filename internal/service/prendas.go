package service

import (
	"fmt"

	"uniformes/internal/dto"
	"uniformes/internal/model"
)

// prendasDeSolicitud converts request items, rejecting names that are empty
// once trimmed.
func prendasDeSolicitud(items []dto.PrendaRequest) ([]model.Prenda, error) {
	prendas := dto.ToPrendas(items)
	for i, p := range prendas {
		if p.Nombre == "" {
			return nil, fmt.Errorf("%w: la prenda %d no tiene nombre", ErrValidacion, i+1)
		}
	}
	return prendas, nil
}
