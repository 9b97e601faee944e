package api

import "github.com/RoyceAzure/lab/shopcart/internal/api/handler"

type Server struct {
	ShopcartHandler *handler.ShopcartHandler
	SystemHandler   *handler.SystemHandler
}

func NewServer(
	shopcartHandler *handler.ShopcartHandler,
	systemHandler *handler.SystemHandler,
) *Server {
	return &Server{
		ShopcartHandler: shopcartHandler,
		SystemHandler:   systemHandler,
	}
}
