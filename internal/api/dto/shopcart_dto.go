package dto

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	er "github.com/RoyceAzure/lab/shopcart/internal/util/rj_error"
	"github.com/shopspring/decimal"
)

type ShopcartDTO struct {
	UserID    int64   `json:"user_id"`
	ProductID int64   `json:"product_id"`
	Quantity  int32   `json:"quantity"`
	Price     float64 `json:"price"`
}

type ProductDTO struct {
	ProductID int64   `json:"product_id"`
	Price     float64 `json:"price"`
	Quantity  int32   `json:"quantity"`
}

type UserShopcartDTO struct {
	UserID   int64        `json:"user_id"`
	Products []ProductDTO `json:"products"`
}

type CartTotalDTO struct {
	Products   []ShopcartDTO `json:"products"`
	TotalPrice float64       `json:"total_price"`
}

type IndexDTO struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	URL     string `json:"url"`
}

type HealthDTO struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ShopcartForm 寫入請求經過驗證後的欄位
type ShopcartForm struct {
	UserID    int64
	ProductID int64
	Quantity  int32
	Price     decimal.Decimal
}

// DeserializeShopcart 解析寫入請求的body並套用欄位驗證
//
// 錯誤:
//   - er.BadRequestCode 400: body不是JSON物件
//   - er.BadRequestCode 400: 缺少必要欄位
//   - er.BadRequestCode 400: 欄位為null或空字串
//   - er.BadRequestCode 400: 欄位無法解析為對應型別
func DeserializeShopcart(body io.Reader) (*ShopcartForm, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, er.New(er.BadRequestCode, "Invalid entry for Shopcart: body of request contained bad or no data")
	}

	data, ok := raw.(map[string]any)
	if !ok {
		return nil, er.New(er.BadRequestCode, "Invalid entry for Shopcart: body of request contained bad or no data")
	}

	for _, field := range []string{"user_id", "product_id", "quantity", "price"} {
		v, ok := data[field]
		if !ok {
			return nil, er.Newf(er.BadRequestCode, "Invalid entry for Shopcart: missing %s", field)
		}
		if v == nil || v == "" {
			return nil, er.New(er.BadRequestCode, "Some data is missing in the request")
		}
	}

	form := &ShopcartForm{}

	userID, ok := intFromValue(data["user_id"])
	if !ok {
		return nil, er.Newf(er.BadRequestCode, "user_id parameter is not valid: %v", data["user_id"])
	}
	form.UserID = userID

	productID, ok := intFromValue(data["product_id"])
	if !ok {
		return nil, er.Newf(er.BadRequestCode, "product_id parameter is not valid: %v", data["product_id"])
	}
	form.ProductID = productID

	quantity, ok := intFromValue(data["quantity"])
	// 超出int32範圍會造成溢位, 一律視為無效值
	if !ok || quantity < math.MinInt32 || quantity > math.MaxInt32 {
		return nil, er.Newf(er.BadRequestCode, "Quantity parameter is not valid: %v", data["quantity"])
	}
	form.Quantity = int32(quantity)

	price, ok := decimalFromValue(data["price"])
	if !ok {
		return nil, er.Newf(er.BadRequestCode, "Price parameter is not valid: %v", data["price"])
	}
	form.Price = price

	return form, nil
}

// 整數欄位同時接受JSON number與數字字串
func intFromValue(v any) (int64, bool) {
	switch t := v.(type) {
	case json.Number:
		i, err := t.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(t, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

func decimalFromValue(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(t)
		return d, err == nil
	default:
		return decimal.Zero, false
	}
}
