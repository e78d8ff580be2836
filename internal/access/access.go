// File: internal/access/access.go
// Package access 集中所有授權判斷。
// Evaluate 是純函式，不碰資料庫也沒有副作用，方便以決策表測試。
package access

import (
	"errors"

	"restaurant-reviews/internal/model"
)

// Caller 由請求憑證解析出的呼叫者身分，nil 代表匿名請求。
type Caller struct {
	ID   int
	Role model.Role
}

// Op 評估器支援的操作種類
type Op int

const (
	OpListUsers Op = iota
	OpReadUser
	OpWriteUser
	OpDeleteUser
	OpReadRestaurant
	OpWriteRestaurant
	OpReadReview
	OpCreateReview
	OpReadReport
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access denied")
	ErrSelfDeletion    = errors.New("cannot delete current user")
)

// Evaluate 判斷 caller 是否可對目標執行 op。
// ownerID 是目標資源的擁有者：使用者紀錄本身的 ID、評價的作者 ID，
// 與擁有者無關的操作傳 0。
//
// 規則依序評估：
//  1. 餐廳讀取是公開資料，任何人皆可。
//  2. 未解析出身分一律拒絕 (ErrUnauthenticated)。
//  3. 刪除自己帳號的防護優先於管理員全權 (ErrSelfDeletion)。
//  4. 管理員可執行其餘所有操作。
//  5. 使用者與評價紀錄只有擁有者本人可讀。
func Evaluate(caller *Caller, op Op, ownerID int) error {
	if op == OpReadRestaurant {
		return nil
	}
	if caller == nil {
		return ErrUnauthenticated
	}
	if op == OpDeleteUser && caller.ID == ownerID {
		return ErrSelfDeletion
	}
	if caller.Role == model.RoleAdmin {
		return nil
	}
	switch op {
	case OpReadUser, OpReadReview:
		if caller.ID == ownerID {
			return nil
		}
		return ErrForbidden
	case OpCreateReview:
		// respondent 只能以自己的名義留下評價
		if caller.ID == ownerID {
			return nil
		}
		return ErrForbidden
	default:
		return ErrForbidden
	}
}
