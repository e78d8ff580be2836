// File: internal/handler/restaurants/restaurant.go
package restaurants

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant-reviews/internal/api"
	"restaurant-reviews/internal/database"
	"restaurant-reviews/internal/model"
	"restaurant-reviews/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getRestaurantByID     = store.GetRestaurantByID
	listRestaurants       = store.ListRestaurants
	createRestaurant      = store.CreateRestaurant
	updateRestaurant      = store.UpdateRestaurant
	deleteRestaurant      = store.DeleteRestaurant
	listRestaurantReports = store.ListRestaurantReports
)

// @Summary     List all restaurants
// @Description 取得所有餐廳，公開資料不需認證
// @Tags        restaurants
// @Produce     json
// @Success     200 {array} api.RestaurantResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /restaurants [get]
func ListRestaurantsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		restaurants, err := listRestaurants(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list restaurants"})
		}
		resp := make([]api.RestaurantResponse, 0, len(restaurants))
		for i := range restaurants {
			resp = append(resp, api.NewRestaurantResponse(&restaurants[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a restaurant by ID
// @Description 取得單一餐廳，公開資料不需認證
// @Tags        restaurants
// @Produce     json
// @Param       restaurant_id path int true "餐廳 ID"
// @Success     200 {object} api.RestaurantResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Router      /restaurants/{restaurant_id} [get]
func GetRestaurantHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("restaurant_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid restaurant ID"})
		}
		restaurant, err := getRestaurantByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "restaurant not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load restaurant"})
		}
		return c.JSON(http.StatusOK, api.NewRestaurantResponse(restaurant))
	}
}

// @Summary     Create a new restaurant
// @Description 管理員建立餐廳，name 為必填
// @Tags        restaurants
// @Accept      json
// @Produce     json
// @Param       body body api.CreateRestaurantRequest true "restaurant payload"
// @Success     201 {object} api.RestaurantResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /restaurants [post]
func CreateRestaurantHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateRestaurantRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.ValidationMessage(err)})
		}

		restaurant, err := createRestaurant(c.Request().Context(), db, &model.Restaurant{
			Name:        req.Name,
			Address:     req.Address,
			Description: req.Description,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create restaurant"})
		}
		return c.JSON(http.StatusCreated, api.NewRestaurantResponse(restaurant))
	}
}

// @Summary     Update a restaurant by ID
// @Description 管理員部分更新餐廳，缺漏欄位保持原值
// @Tags        restaurants
// @Accept      json
// @Produce     json
// @Param       restaurant_id path int true "餐廳 ID"
// @Param       body body api.UpdateRestaurantRequest true "fields to update"
// @Success     200 {object} api.RestaurantResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /restaurants/{restaurant_id} [put]
func UpdateRestaurantHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("restaurant_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid restaurant ID"})
		}

		var req api.UpdateRestaurantRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.ValidationMessage(err)})
		}

		restaurant, err := getRestaurantByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "restaurant not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load restaurant"})
		}

		if req.Name != nil {
			restaurant.Name = *req.Name
		}
		if req.Address != nil {
			restaurant.Address = req.Address
		}
		if req.Description != nil {
			restaurant.Description = req.Description
		}

		if err := updateRestaurant(c.Request().Context(), db, restaurant); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "restaurant not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update restaurant"})
		}
		return c.JSON(http.StatusOK, api.NewRestaurantResponse(restaurant))
	}
}

// @Summary     Delete a restaurant by ID
// @Description 管理員刪除餐廳，其下評價一併刪除
// @Tags        restaurants
// @Param       restaurant_id path int true "餐廳 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /restaurants/{restaurant_id} [delete]
func DeleteRestaurantHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("restaurant_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid restaurant ID"})
		}
		if err := deleteRestaurant(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "restaurant not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to delete restaurant"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
