package handler

import (
	"net/http"

	"uniformes/internal/service"

	"github.com/gin-gonic/gin"
)

type EstadisticasHandler struct{ svc service.EstadisticasService }

func NewEstadisticasHandler(svc service.EstadisticasService) *EstadisticasHandler {
	return &EstadisticasHandler{svc: svc}
}

// Obtener godoc
// @Summary      Estadísticas del panel
// @Description  Mes y año filtran entregas y envíos; la cantidad de trabajadores es global.
// @Tags         estadisticas
// @Produce      json
// @Param        month query int false "Mes 1-12"
// @Param        year  query int false "Año"
// @Success      200   {object} dto.EstadisticasResponse
// @Failure      400   {object} apierror.APIError
// @Router       /api/stats [get]
func (h *EstadisticasHandler) Obtener(c *gin.Context) {
	filtro, ok := bindFiltro(c)
	if !ok {
		return
	}
	resp, err := h.svc.Calcular(c.Request.Context(), filtro)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
