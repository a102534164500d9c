package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/Orionsman/cari-takip/internal/ledger"
	"github.com/Orionsman/cari-takip/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler renders an account statement (ledger rows with running
// balance) as a CSV or XLSX download.
type ExportHandler struct {
	Svc *ledger.Service
}

func NewExportHandler(svc *ledger.Service) *ExportHandler {
	return &ExportHandler{Svc: svc}
}

var statementHeader = []string{"Date", "Description", "Kind", "Debit", "Credit", "Balance"}

func (h *ExportHandler) statement(c *gin.Context) ([]ledger.StatementLine, bool) {
	id, ok := pathID(c)
	if !ok {
		return nil, false
	}
	lines, err := h.Svc.Statement(id)
	if err != nil {
		fail(c, err)
		return nil, false
	}
	return lines, true
}

// StatementCSV streams the statement as CSV.
func (h *ExportHandler) StatementCSV(c *gin.Context) {
	lines, ok := h.statement(c)
	if !ok {
		return
	}

	fileName := fmt.Sprintf("statement-%s-%s.csv", c.Param("id"), time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))

	w := csv.NewWriter(c.Writer)
	_ = w.Write(statementHeader)
	for i := range lines {
		l := &lines[i]
		_ = w.Write([]string{
			l.Date,
			l.Description,
			l.Kind,
			l.Debit.StringFixed(2),
			l.Credit.StringFixed(2),
			l.Balance.StringFixed(2),
		})
	}
	w.Flush()
}

// StatementXLSX writes the statement as an Excel workbook.
func (h *ExportHandler) StatementXLSX(c *gin.Context) {
	lines, ok := h.statement(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Statement"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range statementHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, title)
	}
	for row := range lines {
		l := &lines[row]
		values := []interface{}{
			l.Date,
			l.Description,
			l.Kind,
			l.Debit.StringFixed(2),
			l.Credit.StringFixed(2),
			l.Balance.StringFixed(2),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	fileName := fmt.Sprintf("statement-%s-%s.xlsx", c.Param("id"), time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "write workbook failed")
		return
	}
}
