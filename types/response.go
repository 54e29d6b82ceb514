package types

type DataResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// AnswerResult is the structured output of the answer pipeline.
type AnswerResult struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources"`
}

// ComplianceResult is the structured output of the compliance pipeline.
// Summary is non-empty only when NeedsUpdate is true.
type ComplianceResult struct {
	NeedsUpdate bool   `json:"needsUpdate"`
	Reason      string `json:"reason"`
	Summary     string `json:"summary"`
}

// IngestResult reports ingestion as a pass/fail signal; failures are not
// propagated past this boundary.
type IngestResult struct {
	Success bool `json:"success"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
