package constants

const (
	APIPrefix         = "/api/v1"
	HTTPHeaderTraceID = "X-Trace-ID"
)
