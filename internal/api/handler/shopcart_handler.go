package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/lab/shopcart/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcart/internal/model"
	"github.com/RoyceAzure/lab/shopcart/internal/service"
	"github.com/RoyceAzure/lab/shopcart/internal/util/rj_api"
	er "github.com/RoyceAzure/lab/shopcart/internal/util/rj_error"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type ShopcartHandler struct {
	shopcartService service.IShopcartService
}

func NewShopcartHandler(shopcartService service.IShopcartService) *ShopcartHandler {
	if shopcartService == nil {
		panic("shopcartService cannot be nil")
	}
	return &ShopcartHandler{
		shopcartService: shopcartService,
	}
}

// @Summary list all shopcarts grouped by user
// @Tags shopcarts
// @Produce json
// @Success 200 {array} dto.UserShopcartDTO "success"
// @Failure 500 {object} api.ResponseError "Internal server error"
// @Router /shopcarts [get]
func (h *ShopcartHandler) ListShopcarts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	results, err := h.shopcartService.ListGroupedByUser(ctx)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	dtos := make([]dto.UserShopcartDTO, 0, len(results))
	for i := range results {
		dtos = append(dtos, convertUserShopcartModelToDTO(&results[i]))
	}
	api.SuccessJSON(w, dtos)
}

// @Summary add a product to a user's shopcart
// @Description adds the posted quantity to the existing entry when the (user_id, product_id) pair already exists
// @Tags shopcarts
// @Accept json
// @Produce json
// @Param shopcart body dto.ShopcartDTO true "shopcart entry"
// @Success 201 {object} dto.ShopcartDTO "created"
// @Failure 400 {object} api.ResponseError "BadRequestCode"
// @Failure 415 {object} api.ResponseError "UnsupportedMediaTypeCode"
// @Failure 500 {object} api.ResponseError "Internal server error"
// @Router /shopcarts [post]
func (h *ShopcartHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	form, err := dto.DeserializeShopcart(r.Body)
	if err != nil {
		anaErr := err.(*er.AnaError)
		api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		return
	}

	ctx := r.Context()

	result, err := h.shopcartService.AddProduct(ctx, &model.UpsertShopcartModel{
		UserID:    form.UserID,
		ProductID: form.ProductID,
		Quantity:  form.Quantity,
		Price:     form.Price,
	})
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	location := fmt.Sprintf("/shopcarts/%d/product/%d", result.UserID, result.ProductID)
	api.CreatedJSON(w, location, convertShopcartModelToDTO(result))
}

// @Summary list users whose shopcart total is at least the given amount
// @Tags shopcarts
// @Produce json
// @Param amount query number true "threshold amount"
// @Success 200 {array} int64 "success"
// @Failure 400 {object} api.ResponseError "BadRequestCode"
// @Failure 500 {object} api.ResponseError "Internal server error"
// @Router /shopcarts/users [get]
func (h *ShopcartHandler) UsersWithAmount(w http.ResponseWriter, r *http.Request) {
	rawAmount := r.URL.Query().Get("amount")
	if rawAmount == "" {
		anaErr := er.New(er.BadRequestCode, "parameter amount not found")
		api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		return
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		anaErr := er.Newf(er.BadRequestCode, "parameter is not valid: %s", rawAmount)
		api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		return
	}

	ctx := r.Context()

	users, err := h.shopcartService.UsersWithTotalAtLeast(ctx, amount)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	if users == nil {
		users = []int64{}
	}
	api.SuccessJSON(w, users)
}

// @Summary get the shopcart of a user
// @Tags shopcarts
// @Produce json
// @Param user_id path int true "user id"
// @Success 200 {array} dto.ShopcartDTO "success"
// @Failure 404 {object} api.ResponseError "NotFoundCode"
// @Failure 500 {object} api.ResponseError "Internal server error"
// @Router /shopcarts/{user_id} [get]
func (h *ShopcartHandler) GetUserShopcart(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		anaErr := err.(*er.AnaError)
		api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		return
	}

	ctx := r.Context()

	results, err := h.shopcartService.ListByUser(ctx, userID)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	if len(results) == 0 {
		anaErr := er.Newf(er.NotFoundCode, "Shopcart with user_id '%d' was not found.", userID)
		api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		return
	}

	dtos := make([]dto.ShopcartDTO, 0, len(results))
	for i := range results {
		dtos = append(dtos, convertShopcartModelToDTO(&results[i]))
	}
	api.SuccessJSON(w, dtos)
}

// @Summary get the total amount of a user's shopcart
// @Tags shopcarts
// @Produce json
// @Param user_id path int true "user id"
// @Success 200 {object} dto.CartTotalDTO "success"
// @Failure 500 {object} api.ResponseError "Internal server error"
// @Router /shopcarts/{user_id}/total [get]
func (h *ShopcartHandler) GetUserShopcartTotal(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		anaErr := err.(*er.AnaError)
		api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		return
	}

	ctx := r.Context()

	result, err := h.shopcartService.CartTotal(ctx, userID)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, convertCartTotalModelToDTO(result))
}

// @Summary get one product from a user's shopcart
// @Tags shopcarts
// @Produce json
// @Param user_id path int true "user id"
// @Param product_id path int true "product id"
// @Success 200 {object} dto.ShopcartDTO "success"
// @Failure 404 {object} api.ResponseError "NotFoundCode"
// @Failure 500 {object} api.ResponseError "Internal server error"
// @Router /shopcarts/{user_id}/product/{product_id} [get]
func (h *ShopcartHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	userID, productID, err := productParams(r)
	if err != nil {
		anaErr := err.(*er.AnaError)
		api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		return
	}

	ctx := r.Context()

	result, err := h.shopcartService.GetProduct(ctx, userID, productID)
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, convertShopcartModelToDTO(result))
}

// @Summary update quantity and price of a product in a user's shopcart
// @Description path user_id and product_id override any ids in the body
// @Tags shopcarts
// @Accept json
// @Produce json
// @Param user_id path int true "user id"
// @Param product_id path int true "product id"
// @Param shopcart body dto.ShopcartDTO true "shopcart entry"
// @Success 200 {object} dto.ShopcartDTO "success"
// @Failure 400 {object} api.ResponseError "BadRequestCode"
// @Failure 404 {object} api.ResponseError "NotFoundCode"
// @Failure 415 {object} api.ResponseError "UnsupportedMediaTypeCode"
// @Failure 500 {object} api.ResponseError "Internal server error"
// @Router /shopcarts/{user_id}/product/{product_id} [put]
func (h *ShopcartHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	userID, productID, err := productParams(r)
	if err != nil {
		anaErr := err.(*er.AnaError)
		api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		return
	}

	form, err := dto.DeserializeShopcart(r.Body)
	if err != nil {
		anaErr := err.(*er.AnaError)
		api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		return
	}

	ctx := r.Context()

	result, err := h.shopcartService.UpdateProduct(ctx, &model.UpdateShopcartModel{
		UserID:    userID,
		ProductID: productID,
		Quantity:  form.Quantity,
		Price:     form.Price,
	})
	if err != nil {
		if anaErr, ok := err.(*er.AnaError); ok {
			api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
		} else {
			api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		}
		return
	}

	api.SuccessJSON(w, convertShopcartModelToDTO(result))
}

// @Summary delete one product from a user's shopcart
// @Description deleting an absent product still returns 204
// @Tags shopcarts
// @Param user_id path int true "user id"
// @Param product_id path int true "product id"
// @Success 204 "no content"
// @Failure 500 {object} api.ResponseError "Internal server error"
// @Router /shopcarts/{user_id}/product/{product_id} [delete]
func (h *ShopcartHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	userID, productID, err := productParams(r)
	if err != nil {
		// 刪除不存在的資源視為成功
		api.NoContent(w)
		return
	}

	ctx := r.Context()

	if err := h.shopcartService.DeleteProduct(ctx, userID, productID); err != nil {
		api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		return
	}

	api.NoContent(w)
}

// @Summary delete all products of a user's shopcart
// @Tags shopcarts
// @Param user_id path int true "user id"
// @Success 204 "no content"
// @Failure 500 {object} api.ResponseError "Internal server error"
// @Router /shopcarts/{user_id} [delete]
func (h *ShopcartHandler) DeleteUserShopcart(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		api.NoContent(w)
		return
	}

	ctx := r.Context()

	if err := h.shopcartService.DeleteUserShopcart(ctx, userID); err != nil {
		api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		return
	}

	api.NoContent(w)
}

// @Summary clear all shopcarts data
// @Description test and admin support
// @Tags shopcarts
// @Success 204 "no content"
// @Failure 500 {object} api.ResponseError "Internal server error"
// @Router /shopcarts/reset [delete]
func (h *ShopcartHandler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.shopcartService.Reset(ctx); err != nil {
		api.ErrorJSON(w, int(er.InternalErrorCode), err, er.ErrStrMap[er.InternalErrorCode])
		return
	}

	api.NoContent(w)
}

func userIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "user_id")
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, er.Newf(er.NotFoundCode, "Shopcart with user_id '%s' was not found.", raw)
	}
	return userID, nil
}

func productParams(r *http.Request) (int64, int64, error) {
	userID, err := userIDParam(r)
	if err != nil {
		return 0, 0, err
	}

	raw := chi.URLParam(r, "product_id")
	productID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, 0, er.Newf(er.NotFoundCode, "User with id '%d' doesn't have product with id '%s' in the shopcart", userID, raw)
	}
	return userID, productID, nil
}

// convertShopcartModelToDTO 將 ShopcartModel 轉換為 ShopcartDTO
func convertShopcartModelToDTO(m *model.ShopcartModel) dto.ShopcartDTO {
	return dto.ShopcartDTO{
		UserID:    m.UserID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
		Price:     m.Price.InexactFloat64(),
	}
}

func convertUserShopcartModelToDTO(m *model.UserShopcartModel) dto.UserShopcartDTO {
	products := make([]dto.ProductDTO, 0, len(m.Products))
	for _, p := range m.Products {
		products = append(products, dto.ProductDTO{
			ProductID: p.ProductID,
			Price:     p.Price.InexactFloat64(),
			Quantity:  p.Quantity,
		})
	}
	return dto.UserShopcartDTO{
		UserID:   m.UserID,
		Products: products,
	}
}

func convertCartTotalModelToDTO(m *model.CartTotalModel) dto.CartTotalDTO {
	products := make([]dto.ShopcartDTO, 0, len(m.Products))
	for i := range m.Products {
		products = append(products, convertShopcartModelToDTO(&m.Products[i]))
	}
	return dto.CartTotalDTO{
		Products:   products,
		TotalPrice: m.TotalPrice.InexactFloat64(),
	}
}
