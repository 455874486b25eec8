package handler

import (
	"net/http"

	"uniformes/internal/dto"
	"uniformes/internal/service"

	"github.com/gin-gonic/gin"
)

type DevolucionesUniformeHandler struct {
	svc service.DevolucionUniformeService
}

func NewDevolucionesUniformeHandler(svc service.DevolucionUniformeService) *DevolucionesUniformeHandler {
	return &DevolucionesUniformeHandler{svc: svc}
}

func (h *DevolucionesUniformeHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarDevolucionUniformeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DevolucionesUniformeHandler) Reporte(c *gin.Context) {
	filtro, ok := bindFiltro(c)
	if !ok {
		return
	}
	rows, omitidos, err := h.svc.Reporte(c.Request.Context(), filtro)
	if err != nil {
		responderError(c, err)
		return
	}
	marcarOmitidos(c, omitidos)
	c.JSON(http.StatusOK, rows)
}
