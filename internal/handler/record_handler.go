package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/reportcard/internal/dto"
	"github.com/noah-isme/reportcard/internal/models"
	"github.com/noah-isme/reportcard/internal/service"
	appErrors "github.com/noah-isme/reportcard/pkg/errors"
	"github.com/noah-isme/reportcard/pkg/response"
)

type recordService interface {
	Get(ctx context.Context) (*models.User, error)
	Replace(ctx context.Context, req dto.RecordRequest) (*dto.RecordSummary, error)
	AddTerm(ctx context.Context, req dto.TermRequest) (*dto.RecordSummary, error)
	Snapshots(ctx context.Context, limit int) ([]models.RecordSnapshot, error)
	RestoreSnapshot(ctx context.Context, id string) (*dto.RecordSummary, error)
}

type exportService interface {
	Export(ctx context.Context, format string) (*service.ExportResult, error)
}

// RecordHandler serves the record and its exports.
type RecordHandler struct {
	records recordService
	exports exportService
}

// NewRecordHandler constructs the handler.
func NewRecordHandler(records recordService, exports exportService) *RecordHandler {
	return &RecordHandler{records: records, exports: exports}
}

// Get godoc
// @Summary Current record
// @Tags Record
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /record [get]
func (h *RecordHandler) Get(c *gin.Context) {
	user, err := h.records.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

// Replace godoc
// @Summary Replace the record
// @Tags Record
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.RecordRequest true "Record"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /record [put]
func (h *RecordHandler) Replace(c *gin.Context) {
	var req dto.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid record payload"))
		return
	}
	summary, err := h.records.Replace(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}

// AddTerm godoc
// @Summary Append a term
// @Tags Record
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body dto.TermRequest true "Term"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /record/terms [post]
func (h *RecordHandler) AddTerm(c *gin.Context) {
	var req dto.TermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid term payload"))
		return
	}
	summary, err := h.records.AddTerm(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, summary)
}

// Export godoc
// @Summary Download the record
// @Tags Record
// @Produce text/csv,application/pdf,application/yaml
// @Param format query string false "csv, pdf or yaml" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /record/export [get]
func (h *RecordHandler) Export(c *gin.Context) {
	result, err := h.exports.Export(c.Request.Context(), c.DefaultQuery("format", service.ExportFormatCSV))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Body)
}

// Snapshots godoc
// @Summary Saved history
// @Tags Record
// @Produce json
// @Param limit query int false "max items" default(50)
// @Success 200 {object} response.Envelope
// @Router /record/snapshots [get]
func (h *RecordHandler) Snapshots(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}
	items, err := h.records.Snapshots(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.SnapshotListResponse{Items: items}, map[string]interface{}{"count": len(items)})
}

// RestoreSnapshot godoc
// @Summary Restore a saved snapshot
// @Tags Record
// @Produce json
// @Security BearerAuth
// @Param id path string true "Snapshot ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /record/snapshots/{id}/restore [post]
func (h *RecordHandler) RestoreSnapshot(c *gin.Context) {
	summary, err := h.records.RestoreSnapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}
