package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Prenda is a named quantity of a garment or supply type. Every shipment,
// delivery and return stores its items as a JSON list of Prenda.
type Prenda struct {
	Nombre   string `json:"name"`
	Cantidad int    `json:"qty"`
}

// Totales maps an item name to its summed quantity.
type Totales map[string]int

// Consolidar sums quantities of items sharing the exact same name.
// Matching is case-sensitive: "Polo" and "polo" are different items.
func Consolidar(prendas []Prenda) Totales {
	t := make(Totales, len(prendas))
	for _, p := range prendas {
		t[p.Nombre] += p.Cantidad
	}
	return t
}

// Total returns the sum of all quantities.
func (t Totales) Total() int {
	n := 0
	for _, q := range t {
		n += q
	}
	return n
}

// OrdenNombres returns the distinct names of prendas in first-appearance order.
func OrdenNombres(prendas []Prenda) []string {
	seen := make(map[string]struct{}, len(prendas))
	out := make([]string, 0, len(prendas))
	for _, p := range prendas {
		if _, ok := seen[p.Nombre]; ok {
			continue
		}
		seen[p.Nombre] = struct{}{}
		out = append(out, p.Nombre)
	}
	return out
}

// FormatearPrendas renders items as "qty name" pairs joined by ", ".
func FormatearPrendas(prendas []Prenda) string {
	parts := make([]string, 0, len(prendas))
	for _, p := range prendas {
		parts = append(parts, fmt.Sprintf("%d %s", p.Cantidad, p.Nombre))
	}
	return strings.Join(parts, ", ")
}

// CodificarPrendas serializes items for the items_json column.
func CodificarPrendas(prendas []Prenda) (string, error) {
	if prendas == nil {
		prendas = []Prenda{}
	}
	b, err := json.Marshal(prendas)
	if err != nil {
		return "", fmt.Errorf("codificar prendas: %w", err)
	}
	return string(b), nil
}

// DecodificarPrendas parses an items_json value. Rows written by older
// versions of the system may hold anything, so callers must treat an error
// as "skip this record", never as fatal.
func DecodificarPrendas(raw string) ([]Prenda, error) {
	var prendas []Prenda
	if err := json.Unmarshal([]byte(raw), &prendas); err != nil {
		return nil, fmt.Errorf("items_json invalido: %w", err)
	}
	for _, p := range prendas {
		if p.Cantidad < 0 {
			return nil, fmt.Errorf("items_json invalido: cantidad negativa para %q", p.Nombre)
		}
	}
	return prendas, nil
}
