package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldRunID        = "run_id"
	FieldRunDate      = "run_date"
	FieldLogSource    = "log_source"
	FieldReportKey    = "report_key"
	FieldOutcome      = "outcome"
	FieldLinesRead    = "lines_read"
	FieldLinesMatched = "lines_matched"
)
