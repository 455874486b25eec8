package repository

import (
	"uniformes/internal/dto"

	"gorm.io/gorm"
)

// aplicarFiltro narrows a report query. claveCol is matched with strpos, which
// is a case-sensitive containment test and needs no LIKE escaping.
// Results are ordered by date descending, ties in insertion order.
func aplicarFiltro(q *gorm.DB, claveCol string, f dto.FiltroReporte) *gorm.DB {
	if f.Clave != "" && claveCol != "" {
		q = q.Where("strpos("+claveCol+", ?) > 0", f.Clave)
	}
	q = aplicarPeriodo(q, f.Mes, f.Anio)
	return q.Order("fecha DESC").Order("created_at ASC")
}

func aplicarPeriodo(q *gorm.DB, mes, anio int) *gorm.DB {
	if mes > 0 {
		q = q.Where("EXTRACT(MONTH FROM fecha) = ?", mes)
	}
	if anio > 0 {
		q = q.Where("EXTRACT(YEAR FROM fecha) = ?", anio)
	}
	return q
}
