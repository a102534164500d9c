package handler

import (
	"strconv"

	"github.com/Orionsman/cari-takip/internal/models"
	"github.com/Orionsman/cari-takip/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LogHandler lists the audit trail.
type LogHandler struct {
	DB       *gorm.DB
	PageSize int
}

func NewLogHandler(db *gorm.DB, pageSize int) *LogHandler {
	if pageSize <= 0 {
		pageSize = 50
	}
	return &LogHandler{DB: db, PageSize: pageSize}
}

// List returns audit rows paged, newest first.
func (h *LogHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * h.PageSize

	var total int64
	if err := h.DB.Model(&models.AuditLog{}).Count(&total).Error; err != nil {
		fail(c, err)
		return
	}

	var logs []models.AuditLog
	if err := h.DB.
		Order("id DESC").
		Limit(h.PageSize).
		Offset(offset).
		Find(&logs).Error; err != nil {
		fail(c, err)
		return
	}

	util.Success(c, util.Response{
		"items": logs,
		"total": total,
		"page":  page,
		"size":  h.PageSize,
	})
}
