package handler

import (
	"net/http"
	"time"

	"github.com/Orionsman/cari-takip/internal/ledger"
	"github.com/Orionsman/cari-takip/internal/models"
	"github.com/Orionsman/cari-takip/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// EntryHandler serves the ledger endpoints: the per-account statement
// with running balances, manual entries, and entry deletion.
type EntryHandler struct {
	Svc *ledger.Service
}

func NewEntryHandler(svc *ledger.Service) *EntryHandler {
	return &EntryHandler{Svc: svc}
}

type createEntryReq struct {
	AccountID   uint            `json:"account_id" binding:"required"`
	Date        string          `json:"date"`
	Description string          `json:"description" binding:"max=255"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// ListByAccount returns the account's rows in chronological order,
// each carrying the running balance up to that row.
func (h *EntryHandler) ListByAccount(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	lines, err := h.Svc.Statement(id)
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": lines})
}

// Create inserts a manual entry. The date is stored verbatim; when
// omitted it defaults to today.
func (h *EntryHandler) Create(c *gin.Context) {
	var req createEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	entry := models.LedgerEntry{
		AccountID:   req.AccountID,
		Date:        req.Date,
		Description: req.Description,
		Debit:       req.Debit,
		Credit:      req.Credit,
	}
	if err := h.Svc.AddEntry(&entry); err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"entry": entry})
}

func (h *EntryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteEntry(id); err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}
