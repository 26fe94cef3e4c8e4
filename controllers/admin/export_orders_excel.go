package adminController

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GET /admin/orders/export
//
// Downloads the current active-order board as an Excel sheet, for shift
// handovers and paper backup when a display dies.
func ExportActiveOrdersToExcel(ref *Refresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := ref.Snapshot()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("ActiveOrders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderID", "Table", "Phone", "Status",
			"Items", "Instructions", "TotalAmount", "OrderTime",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, order := range snap.Orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(order.OrderID)
			row.AddCell().SetValue(order.TableNumber)
			row.AddCell().SetValue(order.CustomerPhone)
			row.AddCell().SetValue(string(order.Status))

			var lines []string
			for _, item := range order.Items {
				lines = append(lines, fmt.Sprintf("%dx %s", item.Quantity, item.ItemName))
			}
			row.AddCell().SetValue(strings.Join(lines, ", "))

			row.AddCell().SetValue(order.Instructions)
			row.AddCell().SetValue(order.TotalAmount)
			row.AddCell().SetValue(order.OrderTime)
		}

		c.Header("Content-Disposition", "attachment; filename=active_orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
