package handler

import (
	"net/http"
	"path/filepath"

	"uniformes/internal/apierror"
	"uniformes/internal/dto"
	"uniformes/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EntregasHandler struct{ svc service.EntregaService }

func NewEntregasHandler(svc service.EntregaService) *EntregasHandler {
	return &EntregasHandler{svc: svc}
}

// Registrar godoc
// @Summary      Registrar entrega de uniformes
// @Description  Persiste la entrega y genera el acta PDF. Si el acta falla la entrega queda registrada sin PDF y se responde 500.
// @Tags         entregas
// @Accept       json
// @Produce      json
// @Param        body body     dto.RegistrarEntregaRequest true "Trabajador y prendas"
// @Success      200  {object} dto.EntregaCreadaResponse
// @Failure      404  {object} apierror.APIError "Trabajador no encontrado"
// @Failure      422  {object} apierror.ValidationError
// @Failure      500  {object} apierror.APIError
// @Router       /api/deliveries [post]
func (h *EntregasHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarEntregaRequest
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

// DescargarPDF streams the delivery receipt as an attachment.
func (h *EntregasHandler) DescargarPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	path, err := h.svc.ObtenerPDFPath(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(path, filepath.Base(path))
}

// Reporte godoc
// @Summary      Reporte de entregas
// @Tags         entregas
// @Produce      json
// @Param        key   query string false "Subcadena del DNI"
// @Param        month query int    false "Mes 1-12"
// @Param        year  query int    false "Año"
// @Success      200   {array}  dto.EntregaReporteItem
// @Failure      400   {object} apierror.APIError
// @Router       /api/deliveries/report [get]
func (h *EntregasHandler) Reporte(c *gin.Context) {
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
