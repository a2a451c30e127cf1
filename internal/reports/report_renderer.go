package reports

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"log-analyzer/internal/models"
)

//go:generate mockgen -source=report_renderer.go -destination=./mocks/report_renderer_mock.go -package=mocks
type ReportRenderer interface {
	// Render ranks report endpoints by total time and writes the first size of them
	// into the report template.
	Render(report *models.Report, size int) ([]byte, error)
}

type reportRenderer struct {
	template *Template
}

func NewReportRenderer(template *Template) ReportRenderer {
	return &reportRenderer{template: template}
}

func (r *reportRenderer) Render(report *models.Report, size int) ([]byte, error) {
	endpoints := RankEndpoints(report.Endpoints, size)
	clients := report.Clients
	if clients == nil {
		clients = []*models.ClientSummary{}
	}
	if len(clients) > size {
		clients = clients[:size]
	}

	tableJSON, err := json.Marshal(endpoints)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal endpoint table: %w", err)
	}
	clientsJSON, err := json.Marshal(clients)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal client table: %w", err)
	}

	content := r.template.SafeSubstitute(map[string]string{
		PlaceholderTableJSON:     string(tableJSON),
		PlaceholderClientsJSON:   string(clientsJSON),
		PlaceholderReportDate:    report.Date.Format(reportDateLayout),
		PlaceholderTotalRequests: strconv.FormatUint(report.TotalRequests, 10),
	})
	return []byte(content), nil
}

// RankEndpoints returns at most size endpoints ordered by total time descending,
// ties broken by URL ascending. The unrounded total decides first, so sums that
// round to the same value keep their real order. The input slice is not modified.
func RankEndpoints(endpoints []*models.EndpointSummary, size int) []*models.EndpointSummary {
	ranked := make([]*models.EndpointSummary, len(endpoints))
	copy(ranked, endpoints)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].RawTimeSum != ranked[j].RawTimeSum {
			return ranked[i].RawTimeSum > ranked[j].RawTimeSum
		}
		if ranked[i].TimeSum != ranked[j].TimeSum {
			return ranked[i].TimeSum > ranked[j].TimeSum
		}
		return ranked[i].URL < ranked[j].URL
	})

	if size < 0 {
		size = 0
	}
	if len(ranked) > size {
		ranked = ranked[:size]
	}
	return ranked
}
