package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"
	FieldCount      = "count"
	FieldSource     = "source"
	FieldAttempt    = "attempt"
)

// Components defines standard component names
const (
	ComponentApp          = "app"
	ComponentHTTP         = "http"
	ComponentAggregator   = "aggregator"
	ComponentTransactions = "transactions"
	ComponentEnrich       = "enrich"
	ComponentReport       = "report"
)
