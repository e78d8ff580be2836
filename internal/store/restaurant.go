// File: internal/store/restaurant.go
package store

import (
	"context"
	"fmt"

	"restaurant-reviews/internal/database"
	"restaurant-reviews/internal/model"
)

func GetRestaurantByID(ctx context.Context, db database.DB, restaurantID int) (*model.Restaurant, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, address, description, created_at, updated_at
		 FROM restaurants WHERE id = $1`,
		restaurantID,
	)
	r := &model.Restaurant{}
	if err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Address,
		&r.Description,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetRestaurantByID: %w", translate(err))
	}
	return r, nil
}

func ListRestaurants(ctx context.Context, db database.DB) ([]model.Restaurant, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name, address, description, created_at, updated_at
		 FROM restaurants ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRestaurants: %w", translate(err))
	}
	defer rows.Close()

	var restaurants []model.Restaurant
	for rows.Next() {
		var r model.Restaurant
		if err := rows.Scan(
			&r.ID,
			&r.Name,
			&r.Address,
			&r.Description,
			&r.CreatedAt,
			&r.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListRestaurants: %w", translate(err))
		}
		restaurants = append(restaurants, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRestaurants: %w", translate(err))
	}
	return restaurants, nil
}

func CreateRestaurant(ctx context.Context, db database.DB, r *model.Restaurant) (*model.Restaurant, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO restaurants (name, address, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		r.Name,
		r.Address,
		r.Description,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateRestaurant: %w", translate(err))
	}
	return r, nil
}

func UpdateRestaurant(ctx context.Context, db database.DB, r *model.Restaurant) error {
	row := db.QueryRow(ctx,
		`UPDATE restaurants
		 SET name = $1, address = $2, description = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING updated_at`,
		r.Name,
		r.Address,
		r.Description,
		r.ID,
	)
	if err := row.Scan(&r.UpdatedAt); err != nil {
		return fmt.Errorf("UpdateRestaurant: %w", translate(err))
	}
	return nil
}

// DeleteRestaurant 刪除餐廳，其下所有評價由外鍵 ON DELETE CASCADE 一併刪除。
func DeleteRestaurant(ctx context.Context, db database.DB, restaurantID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM restaurants WHERE id = $1`,
		restaurantID,
	)
	if err != nil {
		return fmt.Errorf("DeleteRestaurant: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteRestaurant: %w", ErrNotFound)
	}
	return nil
}
