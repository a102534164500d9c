package handler

import (
	"net/http"

	"github.com/Orionsman/cari-takip/internal/ledger"
	"github.com/Orionsman/cari-takip/internal/models"
	"github.com/Orionsman/cari-takip/internal/util"

	"github.com/gin-gonic/gin"
)

// AccountHandler serves the counterparty CRUD and balance endpoints.
type AccountHandler struct {
	Svc *ledger.Service
}

func NewAccountHandler(svc *ledger.Service) *AccountHandler {
	return &AccountHandler{Svc: svc}
}

type accountReq struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"max=128"`
	Phone   string `json:"phone" binding:"max=32"`
	Email   string `json:"email" binding:"max=128"`
	Address string `json:"address" binding:"max=255"`
	Note    string `json:"note"`
}

func (r *accountReq) toModel() models.Account {
	return models.Account{
		Name:    r.Name,
		Contact: r.Contact,
		Phone:   r.Phone,
		Email:   r.Email,
		Address: r.Address,
		Note:    r.Note,
	}
}

// List supports ?q= case-insensitive name search.
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.Svc.ListAccounts(c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": accounts})
}

func (h *AccountHandler) Create(c *gin.Context) {
	var req accountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	account := req.toModel()
	if err := h.Svc.CreateAccount(&account); err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"account": account})
}

func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req accountReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	account, err := h.Svc.UpdateAccount(id, req.toModel())
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"account": account})
}

func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteAccount(id); err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}

// Summary returns total debit, total credit and their difference.
func (h *AccountHandler) Summary(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	sum, err := h.Svc.AccountSummary(id)
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"summary": sum})
}
