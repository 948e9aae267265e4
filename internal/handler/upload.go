package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/bhavika1504/my-finance-planner/internal/importer"
	"github.com/bhavika1504/my-finance-planner/internal/util"

	"github.com/gin-gonic/gin"
)

// maxStatementBytes caps the raw upload body.
const maxStatementBytes = 4 << 20 // 4 MiB

// StatementImporter is the import pipeline as the handler sees it.
type StatementImporter interface {
	ImportCSV(ctx context.Context, ownerID uint, raw string) (int, error)
	ImportRows(ctx context.Context, ownerID uint, rows []importer.ParsedRow) ([]uint, error)
}

// UploadHandler serves the statement-import endpoints.
type UploadHandler struct {
	Importer StatementImporter
}

func NewUploadHandler(imp StatementImporter) *UploadHandler {
	return &UploadHandler{Importer: imp}
}

// UploadStatement imports a raw CSV statement posted as the request
// body. The whole statement commits as one batch; on success it
// responds {"success": true, "count": n}.
func (h *UploadHandler) UploadStatement(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxStatementBytes+1))
	if err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "read body failed")
		return
	}
	if len(body) == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "empty statement")
		return
	}
	if len(body) > maxStatementBytes {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "statement too large")
		return
	}

	count, err := h.Importer.ImportCSV(c.Request.Context(), user.ID, string(body))
	if err != nil {
		switch {
		case errors.Is(err, importer.ErrBadInput):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "statement is not valid CSV")
		case errors.Is(err, importer.ErrTooManyRows):
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "statement has too many rows")
		default:
			_ = c.Error(err)
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "upload failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
	})
}

type importRowsReq struct {
	Rows []importer.ParsedRow `json:"rows" binding:"required"`
}

// ImportRows imports rows a client parsed itself. Same atomic batch as
// the raw upload; returns the assigned transaction IDs.
func (h *UploadHandler) ImportRows(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "not logged in")
		return
	}

	var req importRowsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request")
		return
	}

	ids, err := h.Importer.ImportRows(c.Request.Context(), user.ID, req.Rows)
	if err != nil {
		if errors.Is(err, importer.ErrTooManyRows) {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "too many rows")
			return
		}
		_ = c.Error(err)
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "import failed")
		return
	}

	util.Success(c, util.Response{
		"ids":   ids,
		"count": len(ids),
	})
}
