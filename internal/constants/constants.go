package constants

const (
	ServiceName    = "Shopcart REST API Service"
	ServiceVersion = "1.0"

	ContentTypeJSON = "application/json"
)

// for api request tracing
type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)
