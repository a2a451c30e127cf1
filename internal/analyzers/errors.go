package analyzers

import (
	"fmt"

	"log-analyzer/internal/shared/svcerrors"
)

// AnalysisService errors
const (
	codeNoCandidateFile     = "ANL_1000"
	codeReportAlreadyExists = "ANL_1001"

	codeInternalLogSourceFailed   = "ANL_9000"
	codeInternalAggregationFailed = "ANL_9001"
	codeInternalReportFailed      = "ANL_9002"
	codeInternalReportStoreFailed = "ANL_9003"
)

func errNoCandidateFile(cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeNoCandidateFile, "no log file to analyze", cause)
}

// errReportAlreadyExists is returned when another run published the report between the
// idempotence check and the write.
func errReportAlreadyExists(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeReportAlreadyExists, "report already exists", cause)
}

func errInternalLogSourceFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalLogSourceFailed, fmt.Errorf("logSourceFailed: %w", cause))
}

func errInternalAggregationFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalAggregationFailed, fmt.Errorf("aggregationFailed: %w", cause))
}

func errInternalReportFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportFailed, fmt.Errorf("reportFailed: %w", cause))
}

func errInternalReportStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportStoreFailed, fmt.Errorf("reportStoreFailed: %w", cause))
}
