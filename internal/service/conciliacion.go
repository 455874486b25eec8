package service

import "uniformes/internal/model"

// LineaConciliacion is the sent/returned/pending balance of one item name.
type LineaConciliacion struct {
	Nombre    string
	Enviado   int
	Devuelto  int
	Pendiente int // Enviado - Devuelto, negative when over-returned
}

// Conciliacion is the live reconciliation of one laundry shipment.
type Conciliacion struct {
	Lineas []LineaConciliacion
	Estado model.EstadoLavanderia
}

// Conciliar matches a shipment's items against all of its returns.
//
// Lines follow the first-appearance order of the sent items. Returned items
// whose name never appears in the shipment do not produce a line; they still
// count as "something was returned" for the status.
//
// Status: Pendiente when nothing has been returned, Completo when no line has
// a positive pending, Parcial otherwise. "Nothing returned" means a returned
// total of zero, so returns made only of zero-quantity lines leave the
// shipment Pendiente. The result depends only on its
// arguments, so calling it again without a new return gives the same answer.
func Conciliar(enviado []model.Prenda, devoluciones [][]model.Prenda) Conciliacion {
	enviadoTot := model.Consolidar(enviado)

	var todas []model.Prenda
	for _, d := range devoluciones {
		todas = append(todas, d...)
	}
	devueltoTot := model.Consolidar(todas)

	c := Conciliacion{Lineas: make([]LineaConciliacion, 0, len(enviadoTot))}
	completo := true
	for _, nombre := range model.OrdenNombres(enviado) {
		l := LineaConciliacion{
			Nombre:   nombre,
			Enviado:  enviadoTot[nombre],
			Devuelto: devueltoTot[nombre],
		}
		l.Pendiente = l.Enviado - l.Devuelto
		if l.Pendiente > 0 {
			completo = false
		}
		c.Lineas = append(c.Lineas, l)
	}

	switch {
	case devueltoTot.Total() == 0:
		c.Estado = model.EstadoPendiente
	case completo:
		c.Estado = model.EstadoCompleto
	default:
		c.Estado = model.EstadoParcial
	}
	return c
}

// Pendientes lists items still out, with their pending quantity.
func (c Conciliacion) Pendientes() []model.Prenda {
	var out []model.Prenda
	for _, l := range c.Lineas {
		if l.Pendiente > 0 {
			out = append(out, model.Prenda{Nombre: l.Nombre, Cantidad: l.Pendiente})
		}
	}
	return out
}

// Excedentes lists items returned beyond what was sent, with the excess.
func (c Conciliacion) Excedentes() []model.Prenda {
	var out []model.Prenda
	for _, l := range c.Lineas {
		if l.Pendiente < 0 {
			out = append(out, model.Prenda{Nombre: l.Nombre, Cantidad: -l.Pendiente})
		}
	}
	return out
}
