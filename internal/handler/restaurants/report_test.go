package restaurants

import (
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant-reviews/internal/database"
	"restaurant-reviews/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newReportCtx(e *echo.Echo) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/restaurants/report", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestReportHandler(t *testing.T) {
	e := echo.New()

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listRestaurantReports = func(context.Context, database.DB) ([]model.RestaurantReport, error) {
			return nil, errors.New("r")
		}
		ctx, rec := newReportCtx(e)
		err := ReportHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("csv output", func(t *testing.T) {
		t.Cleanup(restore)
		avgFood := 4.5
		avgDrinks := 3.0
		avgOverall := 4.0
		listRestaurantReports = func(context.Context, database.DB) ([]model.RestaurantReport, error) {
			return []model.RestaurantReport{
				{RestaurantID: 1, Name: "Trattoria Roma", AvgFood: &avgFood, AvgDrinks: &avgDrinks, AvgOverall: &avgOverall, ReviewCount: 2},
				{RestaurantID: 2, Name: "Empty Diner", ReviewCount: 0},
			}, nil
		}
		ctx, rec := newReportCtx(e)
		err := ReportHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/csv")
		require.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "restaurants_report.csv")

		records, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 3)
		require.Equal(t, []string{"ID", "Name", "AvgFood", "AvgDrinks", "AvgOverall", "ReviewCount"}, records[0])
		require.Equal(t, []string{"1", "Trattoria Roma", "4.50", "3.00", "4.00", "2"}, records[1])
		require.Equal(t, []string{"2", "Empty Diner", "N/A", "N/A", "N/A", "0"}, records[2])
	})

	t.Run("no restaurants yields header only", func(t *testing.T) {
		t.Cleanup(restore)
		listRestaurantReports = func(context.Context, database.DB) ([]model.RestaurantReport, error) {
			return nil, nil
		}
		ctx, rec := newReportCtx(e)
		err := ReportHandler(nil)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "ID,Name,AvgFood,AvgDrinks,AvgOverall,ReviewCount\n", rec.Body.String())
	})
}

func TestFormatAvg(t *testing.T) {
	require.Equal(t, "N/A", formatAvg(nil))
	v := 3.333333
	require.Equal(t, "3.33", formatAvg(&v))
}
