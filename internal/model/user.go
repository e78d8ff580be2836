// File: internal/model/user.go
package model

import "time"

// Role 使用者角色，僅允許 admin 與 respondent 兩種
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleRespondent Role = "respondent"
)

// Valid 檢查角色是否為合法值
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleRespondent
}

type User struct {
	ID           int       `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
