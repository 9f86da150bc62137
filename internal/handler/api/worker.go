package api

import (
	"net/http"

	"mountworks/internal/handler/httperr"
	"mountworks/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkerHandler struct {
	workers commands.WorkerCommands
}

func NewWorkerHandler(workers commands.WorkerCommands) *WorkerHandler {
	return &WorkerHandler{workers: workers}
}

// @Summary Rebuild zip coverage for a worker
// @Description Re-derive the coverage lookup table after service area changes
// @Tags workers
// @Produce json
// @Param id path string true "Worker ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /workers/{id}/coverage/rebuild [post]
func (h *WorkerHandler) RebuildCoverage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id")
		return
	}

	zips, err := h.workers.RebuildCoverage(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to rebuild coverage")
		return
	}

	c.JSON(http.StatusOK, gin.H{"worker_id": id, "zips": zips})
}
