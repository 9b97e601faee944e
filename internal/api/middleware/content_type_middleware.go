package middleware

import (
	"mime"
	"net/http"

	"github.com/RoyceAzure/lab/shopcart/internal/constants"
	"github.com/RoyceAzure/lab/shopcart/internal/util/rj_api"
	er "github.com/RoyceAzure/lab/shopcart/internal/util/rj_error"
)

// ContentTypeMiddleware 寫入請求必須使用 application/json, 在讀取body之前就擋下
func ContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut {
			contentType := r.Header.Get("Content-Type")
			mediaType, _, err := mime.ParseMediaType(contentType)
			if err != nil || mediaType != constants.ContentTypeJSON {
				anaErr := er.Newf(er.UnsupportedMediaTypeCode, "Content-Type must be %s", constants.ContentTypeJSON)
				api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
