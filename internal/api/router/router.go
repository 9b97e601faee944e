package router

import (
	"fmt"
	"net/http"

	_ "github.com/RoyceAzure/lab/shopcart/docs"
	"github.com/RoyceAzure/lab/shopcart/internal/api"
	m "github.com/RoyceAzure/lab/shopcart/internal/api/middleware"
	rj_api "github.com/RoyceAzure/lab/shopcart/internal/util/rj_api"
	er "github.com/RoyceAzure/lab/shopcart/internal/util/rj_error"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(server *api.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	// 未知路徑與不支援的method也回傳統一錯誤格式
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		anaErr := er.Newf(er.NotFoundCode, "resource '%s' was not found", req.URL.Path)
		rj_api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		anaErr := er.New(er.MethodNotAllowedCode, "Your request method is not supported. Check your HTTP method and try again.")
		rj_api.ErrorJSON(w, int(anaErr.Code), anaErr, er.ErrStrMap[anaErr.Code])
	})

	// Swagger 文檔
	r.Get("/swagger", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	r.Get("/", server.SystemHandler.Index)
	r.Get("/healthcheck", server.SystemHandler.Healthcheck)

	// Shopcart相關路由
	r.Route("/shopcarts", func(r chi.Router) {
		r.Get("/", server.ShopcartHandler.ListShopcarts)
		r.With(m.ContentTypeMiddleware).Post("/", server.ShopcartHandler.AddProduct)

		r.Get("/users", server.ShopcartHandler.UsersWithAmount)
		r.Delete("/reset", server.ShopcartHandler.Reset)

		r.Route("/{user_id}", func(r chi.Router) {
			r.Get("/", server.ShopcartHandler.GetUserShopcart)
			r.Delete("/", server.ShopcartHandler.DeleteUserShopcart)
			r.Get("/total", server.ShopcartHandler.GetUserShopcartTotal)

			r.Route("/product/{product_id}", func(r chi.Router) {
				r.Get("/", server.ShopcartHandler.GetProduct)
				r.With(m.ContentTypeMiddleware).Put("/", server.ShopcartHandler.UpdateProduct)
				r.Delete("/", server.ShopcartHandler.DeleteProduct)
			})
		})
	})

	// 在設置完所有路由後打印路由樹
	fmt.Println(chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Printf("%s %s\n", method, route)
		return nil
	}))
	return r
}
