package handler

import (
	"net/http"
	"time"

	"github.com/Orionsman/cari-takip/internal/ledger"
	"github.com/Orionsman/cari-takip/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PaymentHandler serves the payment endpoints.
type PaymentHandler struct {
	Svc *ledger.Service
}

func NewPaymentHandler(svc *ledger.Service) *PaymentHandler {
	return &PaymentHandler{Svc: svc}
}

type createPaymentReq struct {
	AccountID uint            `json:"account_id" binding:"required"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Method    string          `json:"method" binding:"max=64"`
	Note      string          `json:"note"`
}

// List returns payments joined with account names.
func (h *PaymentHandler) List(c *gin.Context) {
	rows, err := h.Svc.ListPayments()
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": rows})
}

// Create records the payment and its mirrored ledger credit.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req createPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	payment, err := h.Svc.RecordPayment(ledger.PaymentInput{
		AccountID: req.AccountID,
		Date:      req.Date,
		Amount:    req.Amount,
		Method:    req.Method,
		Note:      req.Note,
	})
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"payment": payment})
}

// Delete removes the payment and its mirrored ledger row.
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeletePayment(id); err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}
