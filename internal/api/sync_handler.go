package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/om607397-wq/namaa/internal/cloud"
	"github.com/om607397-wq/namaa/internal/core"
	"github.com/om607397-wq/namaa/internal/store"
)

// SyncHandler exposes cloud sync plus the manual export/import backup path.
type SyncHandler struct {
	sync core.SyncService
	ns   *store.Namespace
	log  *zap.Logger
}

// NewSyncHandler creates a SyncHandler.
func NewSyncHandler(sync core.SyncService, ns *store.Namespace, log *zap.Logger) *SyncHandler {
	return &SyncHandler{sync: sync, ns: ns, log: log}
}

// mapSyncError translates sync errors into distinguishable HTTP responses:
// the UI must be able to tell "not allowed" from "couldn't reach the cloud".
func mapSyncError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, core.ErrNotSignedIn):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no signed-in user"})
	case errors.Is(err, cloud.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Error:   "cloud access denied",
			Details: "check the Firestore rules for the users_data collection",
		})
	default:
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "cloud sync failed", Details: err.Error()})
	}
}

// Upload handles POST /sync/upload.
func (h *SyncHandler) Upload(c *gin.Context) {
	if err := h.sync.Upload(c.Request.Context()); err != nil {
		mapSyncError(c, err)
		return
	}
	c.JSON(http.StatusOK, SyncResponse{Outcome: "uploaded"})
}

// Download handles POST /sync/download.
func (h *SyncHandler) Download(c *gin.Context) {
	outcome, err := h.sync.Download(c.Request.Context())
	if err != nil {
		mapSyncError(c, err)
		return
	}
	c.JSON(http.StatusOK, SyncResponse{Outcome: outcome.String()})
}

// Export handles GET /data/export: the flat key-to-value backup file.
func (h *SyncHandler) Export(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="namaa-backup.json"`)
	c.JSON(http.StatusOK, h.ns.ExportAll())
}

// Import handles POST /data/import with full-overwrite semantics, matching
// cloud restore: wipe (settings preserved), then restore the payload.
func (h *SyncHandler) Import(c *gin.Context) {
	var data map[string]json.RawMessage
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid backup payload", Details: err.Error()})
		return
	}
	h.ns.Wipe(store.KeySettings)
	h.ns.RestoreAll(data)
	h.log.Info("backup imported", zap.Int("keys", len(data)))
	c.JSON(http.StatusOK, SyncResponse{Outcome: "imported"})
}

// Clear handles DELETE /data: wipes every record except device settings.
func (h *SyncHandler) Clear(c *gin.Context) {
	h.sync.ClearLocal()
	c.Status(http.StatusNoContent)
}
