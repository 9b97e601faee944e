package api

import (
	"encoding/json"
	"net/http"
)

// ResponseError 錯誤回應封包 {status, error, message}
type ResponseError struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// SuccessJSON 回傳200與序列化後的資料
func SuccessJSON(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, data)
}

// CreatedJSON 回傳201, Location header指向新建立的資源
func CreatedJSON(w http.ResponseWriter, location string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ErrorJSON 以統一格式回傳錯誤, err為nil時message使用errStr
func ErrorJSON(w http.ResponseWriter, status int, err error, errStr string) {
	message := errStr
	if err != nil {
		message = err.Error()
	}
	WriteJSON(w, status, ResponseError{
		Status:  status,
		Error:   errStr,
		Message: message,
	})
}
