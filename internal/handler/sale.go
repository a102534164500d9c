package handler

import (
	"net/http"
	"time"

	"github.com/Orionsman/cari-takip/internal/ledger"
	"github.com/Orionsman/cari-takip/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SaleHandler serves the sale endpoints.
type SaleHandler struct {
	Svc *ledger.Service
}

func NewSaleHandler(svc *ledger.Service) *SaleHandler {
	return &SaleHandler{Svc: svc}
}

type createSaleReq struct {
	AccountID   uint            `json:"account_id" binding:"required"`
	ProductID   uint            `json:"product_id" binding:"required"`
	ProductName string          `json:"product_name" binding:"max=128"`
	Date        string          `json:"date"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Note        string          `json:"note"`
}

// List returns sales joined with account and product names.
func (h *SaleHandler) List(c *gin.Context) {
	rows, err := h.Svc.ListSales()
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": rows})
}

// Create records the sale and its mirrored ledger debit; the computed
// total is echoed back.
func (h *SaleHandler) Create(c *gin.Context) {
	var req createSaleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	sale, err := h.Svc.RecordSale(ledger.SaleInput{
		AccountID:   req.AccountID,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		Date:        req.Date,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Note:        req.Note,
	})
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{
		"sale":  sale,
		"total": sale.Total,
	})
}

// Delete removes the sale and its mirrored ledger row.
func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteSale(id); err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}
