package domaincache

// Report is the observability snapshot served by the stats endpoint.
type Report struct {
	AllStats
	KeyBreakdown map[Domain]KeyBreakdown `json:"key_breakdown"`
}

// Reporter derives a Report from the registry on every call; it keeps no state.
type Reporter struct {
	registry *Registry
}

func NewReporter(registry *Registry) *Reporter {
	return &Reporter{registry: registry}
}

func (r *Reporter) Report() Report {
	breakdown := make(map[Domain]KeyBreakdown, 3)
	for _, d := range r.registry.Domains() {
		breakdown[d.Name()] = d.Breakdown()
	}

	return Report{
		AllStats:     r.registry.AllStats(),
		KeyBreakdown: breakdown,
	}
}
