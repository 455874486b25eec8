package model

// EstadoLavanderia is the aggregate reconciliation status of a laundry shipment.
// It is always derived from the current returns and never trusted from storage.
type EstadoLavanderia string

const (
	EstadoPendiente EstadoLavanderia = "Pendiente" // nothing returned yet
	EstadoParcial   EstadoLavanderia = "Parcial"   // something returned, something still out
	EstadoCompleto  EstadoLavanderia = "Completo"  // every sent item returned
)

func (e EstadoLavanderia) String() string { return string(e) }
