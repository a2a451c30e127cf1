package models

// EndpointStats holds the running aggregate of one endpoint.
//
// Count == len(Samples) and TotalTime == sum(Samples) hold after every Add.
type EndpointStats struct {
	Endpoint  string
	Count     uint64
	TotalTime float64
	Samples   []float64
}

func NewEndpointStats(endpoint string) *EndpointStats {
	return &EndpointStats{Endpoint: endpoint}
}

func (s *EndpointStats) Add(latency float64) {
	s.Samples = append(s.Samples, latency)
	s.Count++
	s.TotalTime += latency
}

// Corpus is the aggregate of a single log file. It is built by one pass of the
// stream aggregator and consumed once by the statistics finalizer.
type Corpus struct {
	Endpoints         map[string]*EndpointStats
	RequestsByClient  map[string]uint64
	TotalLines        uint64
	TotalMatchedLines uint64
	TotalTime         float64
}

func NewEmptyCorpus() *Corpus {
	return &Corpus{
		Endpoints:        make(map[string]*EndpointStats),
		RequestsByClient: make(map[string]uint64),
	}
}

func (c *Corpus) IsEmpty() bool {
	return c.TotalMatchedLines == 0
}
