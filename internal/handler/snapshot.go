package handler

import (
	"github.com/Orionsman/cari-takip/internal/snapshot"
	"github.com/Orionsman/cari-takip/internal/util"

	"github.com/gin-gonic/gin"
)

// SnapshotHandler serves backup and restore.
type SnapshotHandler struct {
	Engine *snapshot.Engine
}

func NewSnapshotHandler(engine *snapshot.Engine) *SnapshotHandler {
	return &SnapshotHandler{Engine: engine}
}

// Create exports the dataset and stores it under a timestamped name.
func (h *SnapshotHandler) Create(c *gin.Context) {
	info, err := h.Engine.Create()
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"snapshot": info})
}

// List returns available snapshots, newest first.
func (h *SnapshotHandler) List(c *gin.Context) {
	infos, err := h.Engine.List()
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": infos})
}

// Restore replaces the whole dataset with the named snapshot.
func (h *SnapshotHandler) Restore(c *gin.Context) {
	name := c.Param("name")
	applied, err := h.Engine.Restore(name)
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{
		"message":            "restored",
		"statements_applied": applied,
	})
}
