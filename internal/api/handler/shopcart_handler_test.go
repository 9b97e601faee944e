package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/RoyceAzure/lab/shopcart/internal/api"
	"github.com/RoyceAzure/lab/shopcart/internal/api/dto"
	"github.com/RoyceAzure/lab/shopcart/internal/api/handler"
	"github.com/RoyceAzure/lab/shopcart/internal/api/router"
	"github.com/RoyceAzure/lab/shopcart/internal/infra/repository/db/memstore"
	"github.com/RoyceAzure/lab/shopcart/internal/service"
	rj_api "github.com/RoyceAzure/lab/shopcart/internal/util/rj_api"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestServer() *httptest.Server {
	shopcartService := service.NewShopcartService(memstore.NewMemStore())
	server := api.NewServer(
		handler.NewShopcartHandler(shopcartService),
		handler.NewSystemHandler(),
	)
	logger := zerolog.New(io.Discard)
	return httptest.NewServer(router.SetupRouter(server, &logger))
}

func doJSON(t *testing.T, ts *httptest.Server, method, path, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

func postProduct(t *testing.T, ts *httptest.Server, body string) dto.ShopcartDTO {
	t.Helper()
	resp := doJSON(t, ts, http.MethodPost, "/shopcarts", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var result dto.ShopcartDTO
	decodeBody(t, resp, &result)
	return result
}

func TestIndex(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.IndexDTO
	decodeBody(t, resp, &result)
	require.Equal(t, "/shopcarts", result.URL)
	require.NotEmpty(t, result.Name)
}

func TestHealthcheck(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/healthcheck")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.HealthDTO
	decodeBody(t, resp, &result)
	require.Equal(t, http.StatusOK, result.Status)
	require.Equal(t, "Healthy", result.Message)
}

func TestAddProduct(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp := doJSON(t, ts, http.MethodPost, "/shopcarts", `{"user_id":1,"product_id":1,"quantity":1,"price":12.00}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "/shopcarts/1/product/1", resp.Header.Get("Location"))

	var result dto.ShopcartDTO
	decodeBody(t, resp, &result)
	require.Equal(t, int64(1), result.UserID)
	require.Equal(t, int64(1), result.ProductID)
	require.Equal(t, int32(1), result.Quantity)
	require.InDelta(t, 12.00, result.Price, 1e-9)
}

func TestAddProductMergesQuantity(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	postProduct(t, ts, `{"user_id":1,"product_id":1,"quantity":1,"price":12.00}`)
	merged := postProduct(t, ts, `{"user_id":1,"product_id":1,"quantity":2,"price":12.00}`)
	require.Equal(t, int32(3), merged.Quantity)

	resp, err := ts.Client().Get(ts.URL + "/shopcarts/1/product/1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.ShopcartDTO
	decodeBody(t, resp, &result)
	require.Equal(t, int32(3), result.Quantity)
	require.InDelta(t, 12.00, result.Price, 1e-9)
}

func TestAddProductBadRequest(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"zero quantity", `{"user_id":1,"product_id":1,"quantity":0,"price":12.00}`, "You should input number more than 0 for quantity to add a product"},
		{"quantity not a number", `{"user_id":1,"product_id":1,"quantity":"a","price":12.00}`, "Quantity parameter is not valid: a"},
		{"missing price", `{"user_id":1,"product_id":1,"quantity":1}`, "Invalid entry for Shopcart: missing price"},
		{"null field", `{"user_id":1,"product_id":1,"quantity":null,"price":12.00}`, "Some data is missing in the request"},
		{"bad body", `garbage`, "Invalid entry for Shopcart: body of request contained bad or no data"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, ts, http.MethodPost, "/shopcarts", tc.body)
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var result rj_api.ResponseError
			decodeBody(t, resp, &result)
			require.Equal(t, http.StatusBadRequest, result.Status)
			require.Equal(t, tc.message, result.Message)
		})
	}
}

func TestAddProductUnsupportedMediaType(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/shopcarts", strings.NewReader(`{"user_id":1,"product_id":1,"quantity":1,"price":12.00}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "text/plain")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestGetUserShopcart(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	postProduct(t, ts, `{"user_id":1,"product_id":1,"quantity":1,"price":1.00}`)
	postProduct(t, ts, `{"user_id":1,"product_id":2,"quantity":2,"price":2.00}`)

	resp, err := ts.Client().Get(ts.URL + "/shopcarts/1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var results []dto.ShopcartDTO
	decodeBody(t, resp, &results)
	require.Len(t, results, 2)
}

func TestGetUserShopcartNotFound(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/shopcarts/1")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var result rj_api.ResponseError
	decodeBody(t, resp, &result)
	require.Equal(t, "Shopcart with user_id '1' was not found.", result.Message)
}

func TestGetProductNotFound(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/shopcarts/1/product/2")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var result rj_api.ResponseError
	decodeBody(t, resp, &result)
	require.Equal(t, "User with id '1' doesn't have product with id '2' in the shopcart", result.Message)
}

func TestListShopcarts(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	postProduct(t, ts, `{"user_id":1,"product_id":1,"quantity":1,"price":1.00}`)
	postProduct(t, ts, `{"user_id":1,"product_id":2,"quantity":1,"price":2.00}`)
	postProduct(t, ts, `{"user_id":2,"product_id":1,"quantity":1,"price":1.00}`)

	resp, err := ts.Client().Get(ts.URL + "/shopcarts")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var results []dto.UserShopcartDTO
	decodeBody(t, resp, &results)
	require.Len(t, results, 2)

	byUser := make(map[int64][]dto.ProductDTO)
	for _, r := range results {
		byUser[r.UserID] = r.Products
	}
	require.Len(t, byUser[1], 2)
	require.Len(t, byUser[2], 1)
}

func TestGetUserShopcartTotal(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	postProduct(t, ts, `{"user_id":1,"product_id":1,"quantity":2,"price":12.00}`)
	postProduct(t, ts, `{"user_id":1,"product_id":2,"quantity":1,"price":0.50}`)

	resp, err := ts.Client().Get(ts.URL + "/shopcarts/1/total")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.CartTotalDTO
	decodeBody(t, resp, &result)
	require.Len(t, result.Products, 2)
	require.InDelta(t, 24.50, result.TotalPrice, 1e-9)
}

func TestUsersWithAmount(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	// totals: user1 = 12.00, user2 = 24.00, user3 = 13.00
	postProduct(t, ts, `{"user_id":1,"product_id":1,"quantity":1,"price":12.00}`)
	postProduct(t, ts, `{"user_id":2,"product_id":1,"quantity":2,"price":12.00}`)
	postProduct(t, ts, `{"user_id":3,"product_id":1,"quantity":1,"price":13.00}`)

	resp, err := ts.Client().Get(ts.URL + "/shopcarts/users?amount=13")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var users []int64
	decodeBody(t, resp, &users)
	require.ElementsMatch(t, []int64{2, 3}, users)
}

func TestUsersWithAmountEmptyResult(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/shopcarts/users?amount=1")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, "[]", strings.TrimSpace(string(body)))
}

func TestUsersWithAmountBadRequest(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/shopcarts/users")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var result rj_api.ResponseError
	decodeBody(t, resp, &result)
	require.Equal(t, "parameter amount not found", result.Message)

	resp, err = ts.Client().Get(ts.URL + "/shopcarts/users?amount=abc")
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	decodeBody(t, resp, &result)
	require.Equal(t, "parameter is not valid: abc", result.Message)
}

func TestUpdateProduct(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	postProduct(t, ts, `{"user_id":1,"product_id":1,"quantity":1,"price":12.00}`)

	resp := doJSON(t, ts, http.MethodPut, "/shopcarts/1/product/1", `{"user_id":1,"product_id":1,"quantity":5,"price":10.00}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result dto.ShopcartDTO
	decodeBody(t, resp, &result)
	require.Equal(t, int32(5), result.Quantity)
	require.InDelta(t, 10.00, result.Price, 1e-9)
}

func TestUpdateProductNotFound(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp := doJSON(t, ts, http.MethodPut, "/shopcarts/1/product/1", `{"user_id":1,"product_id":1,"quantity":5,"price":10.00}`)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var result rj_api.ResponseError
	decodeBody(t, resp, &result)
	require.Equal(t, "User with id '1' doesn't have product with id '1' in the shopcart", result.Message)
}

func TestDeleteProductIdempotent(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	postProduct(t, ts, `{"user_id":1,"product_id":1,"quantity":1,"price":1.00}`)

	resp := doJSON(t, ts, http.MethodDelete, "/shopcarts/1/product/1", "")
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// 再次刪除同樣回傳204
	resp = doJSON(t, ts, http.MethodDelete, "/shopcarts/1/product/1", "")
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestDeleteUserShopcart(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	postProduct(t, ts, `{"user_id":1,"product_id":1,"quantity":1,"price":1.00}`)
	postProduct(t, ts, `{"user_id":2,"product_id":1,"quantity":1,"price":1.00}`)

	resp := doJSON(t, ts, http.MethodDelete, "/shopcarts/1", "")
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err := ts.Client().Get(ts.URL + "/shopcarts/1")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = ts.Client().Get(ts.URL + "/shopcarts/2")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReset(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	postProduct(t, ts, `{"user_id":1,"product_id":1,"quantity":1,"price":1.00}`)
	postProduct(t, ts, `{"user_id":2,"product_id":1,"quantity":1,"price":1.00}`)

	resp := doJSON(t, ts, http.MethodDelete, "/shopcarts/reset", "")
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	getResp, err := ts.Client().Get(ts.URL + "/shopcarts")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, getResp.StatusCode)

	var results []dto.UserShopcartDTO
	decodeBody(t, getResp, &results)
	require.Empty(t, results)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/no/such/path")
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var result rj_api.ResponseError
	decodeBody(t, resp, &result)
	require.Equal(t, "resource '/no/such/path' was not found", result.Message)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer()
	defer ts.Close()

	resp := doJSON(t, ts, http.MethodPatch, "/shopcarts", `{}`)
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	var result rj_api.ResponseError
	decodeBody(t, resp, &result)
	require.Equal(t, "Your request method is not supported. Check your HTTP method and try again.", result.Message)
}
