package handler

import (
	"net/http"

	"uniformes/internal/dto"
	"uniformes/internal/service"

	"github.com/gin-gonic/gin"
)

type LavanderiaHandler struct{ svc service.LavanderiaService }

func NewLavanderiaHandler(svc service.LavanderiaService) *LavanderiaHandler {
	return &LavanderiaHandler{svc: svc}
}

// CrearEnvio godoc
// @Summary      Registrar envío a lavandería
// @Tags         lavanderia
// @Accept       json
// @Produce      json
// @Param        body body     dto.CrearEnvioRequest true "Guía y prendas enviadas"
// @Success      200  {object} dto.EnvioResponse
// @Failure      400  {object} apierror.APIError "Número de guía ya registrado"
// @Failure      422  {object} apierror.ValidationError
// @Router       /api/laundry [post]
func (h *LavanderiaHandler) CrearEnvio(c *gin.Context) {
	var req dto.CrearEnvioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearEnvio(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LavanderiaHandler) ListarRecientes(c *gin.Context) {
	resp, err := h.svc.ListarRecientes(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LavanderiaHandler) ObtenerEnvio(c *gin.Context) {
	resp, err := h.svc.ObtenerEnvio(c.Request.Context(), c.Param("guide"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Estado godoc
// @Summary      Estado de conciliación de una guía
// @Description  Enviado, devuelto y pendiente por prenda. Pendiente negativo indica devolución en exceso.
// @Tags         lavanderia
// @Produce      json
// @Param        key  path     string true "Número de guía"
// @Success      200  {object} dto.EstadoEnvioResponse
// @Failure      404  {object} apierror.APIError
// @Router       /api/laundry/{key}/status [get]
func (h *LavanderiaHandler) Estado(c *gin.Context) {
	resp, err := h.svc.Estado(c.Request.Context(), c.Param("key"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarDevolucion godoc
// @Summary      Registrar devolución de lavandería
// @Tags         lavanderia
// @Accept       json
// @Produce      json
// @Param        body body     dto.RegistrarDevolucionRequest true "Guía y prendas devueltas"
// @Success      200  {object} dto.DevolucionRegistradaResponse
// @Failure      404  {object} apierror.APIError "Guía no encontrada"
// @Failure      422  {object} apierror.ValidationError
// @Router       /api/laundry/return [post]
func (h *LavanderiaHandler) RegistrarDevolucion(c *gin.Context) {
	var req dto.RegistrarDevolucionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarDevolucion(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LavanderiaHandler) Reporte(c *gin.Context) {
	filtro, ok := bindFiltro(c)
	if !ok {
		return
	}
	rep, err := h.svc.Reporte(c.Request.Context(), filtro)
	if err != nil {
		responderError(c, err)
		return
	}
	marcarOmitidos(c, rep.Omitidos)
	c.JSON(http.StatusOK, rep.Filas)
}
