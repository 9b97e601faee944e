package model

import (
	"github.com/shopspring/decimal"
)

type ShopcartModel struct {
	UserID    int64
	ProductID int64
	Quantity  int32
	Price     decimal.Decimal
}

type UpsertShopcartModel struct {
	UserID    int64
	ProductID int64
	Quantity  int32
	Price     decimal.Decimal
}

type UpdateShopcartModel struct {
	UserID    int64
	ProductID int64
	Quantity  int32
	Price     decimal.Decimal
}

// UserShopcartModel 單一使用者的購物車內容
type UserShopcartModel struct {
	UserID   int64
	Products []ShopcartModel
}

// CartTotalModel 購物車金額總計, TotalPrice 為 sum(price*quantity) 四捨五入到小數第二位
type CartTotalModel struct {
	Products   []ShopcartModel
	TotalPrice decimal.Decimal
}
