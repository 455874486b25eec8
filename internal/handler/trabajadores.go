package handler

import (
	"net/http"

	"uniformes/internal/dto"
	"uniformes/internal/service"

	"github.com/gin-gonic/gin"
)

type TrabajadoresHandler struct{ svc service.TrabajadorService }

func NewTrabajadoresHandler(svc service.TrabajadorService) *TrabajadoresHandler {
	return &TrabajadoresHandler{svc: svc}
}

// Crear godoc
// @Summary      Registrar trabajador
// @Tags         trabajadores
// @Accept       json
// @Produce      json
// @Param        body body     dto.CrearTrabajadorRequest true "Datos del trabajador"
// @Success      200  {object} dto.TrabajadorResponse
// @Failure      400  {object} apierror.APIError "DNI ya registrado"
// @Failure      422  {object} apierror.ValidationError
// @Router       /api/users [post]
func (h *TrabajadoresHandler) Crear(c *gin.Context) {
	var req dto.CrearTrabajadorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TrabajadoresHandler) ObtenerPorDNI(c *gin.Context) {
	resp, err := h.svc.ObtenerPorDNI(c.Request.Context(), c.Param("dni"))
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
