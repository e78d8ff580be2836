// File: internal/handler/restaurants/report.go
package restaurants

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"restaurant-reviews/internal/api"
	"restaurant-reviews/internal/database"

	"github.com/labstack/echo/v4"
)

// noDataMarker 無任何評價時輸出的標記，避免與真正的平均 0 混淆
const noDataMarker = "N/A"

var reportHeader = []string{"ID", "Name", "AvgFood", "AvgDrinks", "AvgOverall", "ReviewCount"}

func formatAvg(avg *float64) string {
	if avg == nil {
		return noDataMarker
	}
	return fmt.Sprintf("%.2f", *avg)
}

// @Summary     Download restaurant ratings report
// @Description 下載所有餐廳的平均評分 CSV 報表（僅限管理員）
// @Tags        restaurants
// @Produce     text/csv
// @Success     200 {string} string "CSV document"
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /restaurants/report [get]
func ReportHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		reports, err := listRestaurantReports(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to build report"})
		}

		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.Write(reportHeader); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to build report"})
		}
		for _, r := range reports {
			record := []string{
				strconv.Itoa(r.RestaurantID),
				r.Name,
				formatAvg(r.AvgFood),
				formatAvg(r.AvgDrinks),
				formatAvg(r.AvgOverall),
				strconv.Itoa(r.ReviewCount),
			}
			if err := w.Write(record); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to build report"})
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to build report"})
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="restaurants_report.csv"`)
		return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
	}
}
