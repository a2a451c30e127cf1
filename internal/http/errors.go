package http

import (
	"fmt"

	"log-analyzer/internal/shared/svcerrors"
)

// Report handler errors
const (
	codeInvalidReportDate = "RPT_1000"
	codeReportNotFound    = "RPT_1001"

	codeInternalReportStoreFailed = "RPT_9000"
)

func errInvalidReportDate(value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidReportDate, fmt.Sprintf("invalid report date %q: expected YYYY-MM-DD", value), cause)
}

func errReportNotFound(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeReportNotFound, "report not found", cause)
}

func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}
