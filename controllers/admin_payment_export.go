package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/Govind-619/BooksCourier/config"
	"github.com/Govind-619/BooksCourier/models"
	"github.com/Govind-619/BooksCourier/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// ExportPayments downloads payment records as an Excel sheet. Optional from
// and to query parameters (YYYY-MM-DD) bound the payment date, both inclusive.
func ExportPayments(c *gin.Context) {
	utils.LogInfo("ExportPayments called")

	query := config.DB.Model(&models.Payment{})
	if from := c.Query("from"); from != "" {
		start, err := time.Parse("2006-01-02", from)
		if err != nil {
			utils.BadRequest(c, "Invalid from date", "Use YYYY-MM-DD")
			return
		}
		query = query.Where("payment_date >= ?", start)
	}
	if to := c.Query("to"); to != "" {
		end, err := time.Parse("2006-01-02", to)
		if err != nil {
			utils.BadRequest(c, "Invalid to date", "Use YYYY-MM-DD")
			return
		}
		query = query.Where("payment_date < ?", end.AddDate(0, 0, 1))
	}

	var records []models.Payment
	if err := query.Order("payment_date DESC").Find(&records).Error; err != nil {
		utils.LogError("Failed to fetch payments for export: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}
	utils.LogDebug("Exporting %d payments", len(records))

	data, err := paymentsWorkbook(records)
	if err != nil {
		utils.LogError("Failed to build payments workbook: %v", err)
		utils.InternalServerError(c, "Failed to generate export", err.Error())
		return
	}

	filename := fmt.Sprintf("payments-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func paymentsWorkbook(records []models.Payment) ([]byte, error) {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Payments")
	if err != nil {
		return nil, err
	}

	header := sheet.AddRow()
	for _, h := range []string{"Payment ID", "Date", "Tracking ID", "Transaction ID", "Order ID", "Book", "Customer", "Phone", "Amount", "Currency", "Status"} {
		header.AddCell().SetString(h)
	}

	var total float64
	for _, p := range records {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(p.ID))
		row.AddCell().SetString(p.PaymentDate.Format("2006-01-02 15:04:05"))
		row.AddCell().SetString(p.TrackingID)
		row.AddCell().SetString(p.TransactionID)
		row.AddCell().SetInt(int(p.OrderID))
		row.AddCell().SetString(p.BookTitle)
		row.AddCell().SetString(p.CustomerEmail)
		row.AddCell().SetString(p.CustomerPhone)
		row.AddCell().SetFloat(p.Amount)
		row.AddCell().SetString(p.Currency)
		row.AddCell().SetString(p.PaymentStatus)
		total += p.Amount
	}

	sheet.AddRow()
	summary := sheet.AddRow()
	summary.AddCell().SetString("Total")
	summary.AddCell().SetInt(len(records))
	summary.AddCell().SetFloat(total)

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
