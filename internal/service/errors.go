package service

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors. Handlers map them to HTTP status codes with errors.Is;
// anything else is an unexpected failure and is answered with a 500.
var (
	ErrNoEncontrado = errors.New("no encontrado")         // 404
	ErrConflicto    = errors.New("ya registrado")         // 400
	ErrValidacion   = errors.New("datos invalidos")       // 422
	ErrRenderizado  = errors.New("error al generar acta") // 500, record already persisted
)

func esNoEncontrado(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }

// esDuplicado needs gorm.Config.TranslateError, set in infra.NewDatabase.
func esDuplicado(err error) bool { return errors.Is(err, gorm.ErrDuplicatedKey) }
