package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"uniformes/internal/apierror"
	"uniformes/internal/dto"
	"uniformes/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// SkippedRecordsHeader reports how many stored records a listing had to skip
// because their item list could not be read.
const SkippedRecordsHeader = "X-Skipped-Records"

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0 work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// notblank rejects whitespace-only text, which trims to an empty value.
	_ = validate.RegisterValidation("notblank", validators.NotBlank)

	// Report fields by their wire name (json, or form for query filters).
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(camposInvalidos(err)))
		return false
	}
	return true
}

// bindFiltro reads key / month / year from the query string. Any bad value is
// a 400: a report filter is not a resource to validate field by field.
func bindFiltro(c *gin.Context) (dto.FiltroReporte, bool) {
	var f dto.FiltroReporte
	if err := c.ShouldBindQuery(&f); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Filtro invalido: "+err.Error()))
		return f, false
	}
	if err := validate.Struct(f); err != nil {
		campos := camposInvalidos(err)
		c.JSON(http.StatusBadRequest, apierror.ValidationError{Detail: "Filtro invalido", Fields: campos})
		return f, false
	}
	f.Clave = strings.TrimSpace(f.Clave)
	return f, true
}

func camposInvalidos(err error) map[string]string {
	fields := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Namespace()[strings.Index(fe.Namespace(), ".")+1:]] = fe.Tag()
		}
	}
	return fields
}

// responderError maps service sentinels to status codes. Anything else is
// handed to middleware.ErrorHandler, which logs it and answers a generic 500.
func responderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
	case errors.Is(err, service.ErrConflicto):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
	case errors.Is(err, service.ErrValidacion):
		c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
	case errors.Is(err, service.ErrRenderizado):
		c.JSON(http.StatusInternalServerError, apierror.New("La entrega fue registrada pero no se pudo generar el acta"))
	default:
		_ = c.Error(err)
	}
}

func marcarOmitidos(c *gin.Context, n int) {
	if n > 0 {
		c.Header(SkippedRecordsHeader, strconv.Itoa(n))
	}
}
