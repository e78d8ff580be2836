// File: internal/handler/reviews/review.go
package reviews

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant-reviews/internal/access"
	"restaurant-reviews/internal/api"
	"restaurant-reviews/internal/database"
	"restaurant-reviews/internal/middleware"
	"restaurant-reviews/internal/model"
	"restaurant-reviews/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getReviewByID     = store.GetReviewByID
	listReviews       = store.ListReviews
	createReview      = store.CreateReview
	getRestaurantByID = store.GetRestaurantByID
)

// @Summary     List reviews
// @Description 管理員可列出所有評價，respondent 只會看到自己的；可用 restaurant_id 與 user_id 過濾
// @Tags        reviews
// @Produce     json
// @Param       restaurant_id query int false "依餐廳過濾"
// @Param       user_id query int false "依作者過濾（respondent 僅限自己）"
// @Success     200 {array} api.ReviewResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reviews [get]
func ListReviewsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := middleware.CallerFromContext(c)
		if caller == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "authentication required"})
		}

		var filter store.ReviewFilter
		if raw := c.QueryParam("restaurant_id"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid restaurant_id"})
			}
			filter.RestaurantID = &id
		}
		if raw := c.QueryParam("user_id"); raw != "" {
			id, err := strconv.Atoi(raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user_id"})
			}
			if err := access.Evaluate(caller, access.OpReadReview, id); err != nil {
				return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "access denied"})
			}
			filter.UserID = &id
		} else if caller.Role != model.RoleAdmin {
			// respondent 未指定 user_id 時僅能看到自己的評價
			filter.UserID = &caller.ID
		}

		reviews, err := listReviews(c.Request().Context(), db, filter)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to list reviews"})
		}
		resp := make([]api.ReviewResponse, 0, len(reviews))
		for i := range reviews {
			resp = append(resp, api.NewReviewResponse(&reviews[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a review by ID
// @Description 管理員可讀任何評價，respondent 只能讀自己的
// @Tags        reviews
// @Produce     json
// @Param       review_id path int true "評價 ID"
// @Success     200 {object} api.ReviewResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reviews/{review_id} [get]
func GetReviewHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("review_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid review ID"})
		}

		review, err := getReviewByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "review not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load review"})
		}

		caller := middleware.CallerFromContext(c)
		if err := access.Evaluate(caller, access.OpReadReview, review.UserID); err != nil {
			if errors.Is(err, access.ErrUnauthenticated) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "authentication required"})
			}
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "access denied"})
		}
		return c.JSON(http.StatusOK, api.NewReviewResponse(review))
	}
}

// @Summary     Create a review
// @Description 已認證的使用者對一間餐廳留下評價，同一餐廳每人僅限一則
// @Tags        reviews
// @Accept      json
// @Produce     json
// @Param       body body api.CreateReviewRequest true "review payload"
// @Success     201 {object} api.ReviewResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /reviews [post]
func CreateReviewHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := middleware.CallerFromContext(c)
		if caller == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "authentication required"})
		}

		var req api.CreateReviewRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: api.ValidationMessage(err)})
		}

		if err := access.Evaluate(caller, access.OpCreateReview, caller.ID); err != nil {
			return c.JSON(http.StatusForbidden, api.ErrorResponse{Message: "access denied"})
		}

		if _, err := getRestaurantByID(c.Request().Context(), db, *req.RestaurantID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "restaurant not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load restaurant"})
		}

		review, err := createReview(c.Request().Context(), db, &model.Review{
			RestaurantID:  *req.RestaurantID,
			UserID:        caller.ID,
			FoodRating:    *req.FoodRating,
			DrinksRating:  *req.DrinksRating,
			OverallRating: *req.OverallRating,
			Comment:       req.Comment,
		})
		if err != nil {
			// 唯一約束是重複評價的最終防線，兩個併發請求中輸的一方在這裡結束
			if errors.Is(err, store.ErrDuplicate) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "you have already reviewed this restaurant"})
			}
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "restaurant not found"})
			}
			if errors.Is(err, store.ErrInvalid) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "ratings must be integers between 1 and 5"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create review"})
		}
		return c.JSON(http.StatusCreated, api.NewReviewResponse(review))
	}
}
