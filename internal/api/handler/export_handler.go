package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/datosargentinosjuniors/prestamosaaaj/internal/service"
	"github.com/datosargentinosjuniors/prestamosaaaj/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"
)

// ExportHandler HTTP de las descargas
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler crea el ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportExcel descarga el libro completo multi-hoja
// GET /api/v1/export/excel
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	buf, nombre, err := h.exportSvc.ExportarExcel(c.Request.Context())
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encoded := url.QueryEscape(nombre)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encoded)
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

// ExportCSV descarga una tabla cruda como CSV
// GET /api/v1/export/:tabla/csv
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	tabla := c.Param("tabla")

	data, nombre, err := h.exportSvc.ExportarCSV(c.Request.Context(), tabla)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	encoded := url.QueryEscape(nombre)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encoded)
	c.Data(http.StatusOK, contentTypeCSV, data)
}

// handleExportError traduce los errores de negocio del módulo
func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTablaDesconocida):
		response.BadRequest(c, 16001, "la tabla pedida no existe: usar jugadores, seguimiento o reportes")
	default:
		response.InternalError(c)
	}
}
