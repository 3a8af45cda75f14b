package loggers

const (
	FieldApp          = "app"
	FieldComponent    = "component"
	FieldHttpMethod   = "http_method"
	FieldHttpPath     = "http_path"
	FieldHttpStatus   = "http_status"
	FieldClientFamily = "client_family"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldRunID     = "run_id"
	FieldTrigger   = "trigger"
	FieldIndexType = "index_type"
	FieldRegion    = "region"
	FieldDate      = "date"
)
