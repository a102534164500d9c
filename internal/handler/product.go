package handler

import (
	"net/http"

	"github.com/Orionsman/cari-takip/internal/ledger"
	"github.com/Orionsman/cari-takip/internal/models"
	"github.com/Orionsman/cari-takip/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	Svc *ledger.Service
}

func NewProductHandler(svc *ledger.Service) *ProductHandler {
	return &ProductHandler{Svc: svc}
}

type productReq struct {
	Code  string          `json:"code" binding:"max=64"`
	Name  string          `json:"name" binding:"required"`
	Unit  string          `json:"unit" binding:"max=32"`
	Price decimal.Decimal `json:"price"`
	Stock decimal.Decimal `json:"stock"`
	Note  string          `json:"note"`
}

func (r *productReq) toModel() models.Product {
	return models.Product{
		Code:  r.Code,
		Name:  r.Name,
		Unit:  r.Unit,
		Price: r.Price,
		Stock: r.Stock,
		Note:  r.Note,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.Svc.ListProducts()
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"items": products})
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	product := req.toModel()
	if err := h.Svc.CreateProduct(&product); err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"product": product})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	product, err := h.Svc.UpdateProduct(id, req.toModel())
	if err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"product": product})
}

// Delete refuses with a conflict status while sales reference the
// product.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.DeleteProduct(id); err != nil {
		fail(c, err)
		return
	}
	util.Success(c, util.Response{"message": "deleted"})
}
