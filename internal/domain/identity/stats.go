package identity

// Stats counts resolution outcomes for one pass.
type Stats struct {
	Total        int `json:"total"`
	Exact        int `json:"exact"`
	Normalized   int `json:"normalized"`
	Fuzzy        int `json:"fuzzy"`
	LastNameTeam int `json:"last_name_team"`
	Unmatched    int `json:"unmatched"`
}

func (s *Stats) Record(m Match) {
	s.Total++
	switch m.Strategy {
	case StrategyExact:
		s.Exact++
	case StrategyNormalized:
		s.Normalized++
	case StrategyFuzzy:
		s.Fuzzy++
	case StrategyLastNameTeam:
		s.LastNameTeam++
	default:
		s.Unmatched++
	}
}

func (s Stats) Matched() int {
	return s.Total - s.Unmatched
}
