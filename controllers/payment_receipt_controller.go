package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/Govind-619/BooksCourier/config"
	"github.com/Govind-619/BooksCourier/models"
	"github.com/Govind-619/BooksCourier/utils"
	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadPaymentReceipt renders a PDF receipt for one of the caller's payments
func DownloadPaymentReceipt(c *gin.Context) {
	utils.LogInfo("DownloadPaymentReceipt called")

	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	email := c.GetString(utils.ContextEmail)

	var payment models.Payment
	if err := config.DB.Where("id = ? AND customer_email = ?", id, email).First(&payment).Error; err != nil {
		utils.LogError("Payment %d not found for %s", id, email)
		utils.NotFound(c, "Payment not found")
		return
	}

	var order models.Order
	hasOrder := config.DB.First(&order, payment.OrderID).Error == nil

	pdf, err := renderReceipt(&payment, &order, hasOrder)
	if err != nil {
		utils.LogError("Failed to render receipt for payment %d: %v", id, err)
		utils.InternalServerError(c, "Failed to generate receipt", err.Error())
		return
	}

	utils.LogInfo("Generated receipt for payment %d", id)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", payment.TrackingID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func renderReceipt(payment *models.Payment, order *models.Order, hasOrder bool) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, utils.AppName)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	rows := [][2]string{
		{"Tracking ID", payment.TrackingID},
		{"Transaction ID", payment.TransactionID},
		{"Payment Date", payment.PaymentDate.Format("2006-01-02 15:04:05")},
		{"Status", payment.PaymentStatus},
		{"Customer", payment.CustomerEmail},
		{"Phone", payment.CustomerPhone},
		{"Book", payment.BookTitle},
	}
	if hasOrder {
		rows = append(rows,
			[2]string{"Order ID", fmt.Sprintf("%d", order.ID)},
			[2]string{"Quantity", fmt.Sprintf("%d", order.Quantity)},
			[2]string{"Ship To", order.Address},
		)
	}

	for _, row := range rows {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(50, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(130, 8, row[1], "1", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(50, 10, "Amount Paid:", "", 0, "L", false, 0, "")
	pdf.CellFormat(130, 10, fmt.Sprintf("%.2f %s", payment.Amount, payment.Currency), "", 1, "L", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 12)
	pdf.Cell(0, 10, "Thank you for buying with "+utils.AppName+"!")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
