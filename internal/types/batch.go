package types

// Stage identifies which pipeline stage a batch item failed in.
type Stage string

// Pipeline stages that can produce a FailureRecord.
const (
	StageTranscription Stage = "transcription"
	StageExtraction    Stage = "extraction"
	StageAggregation   Stage = "aggregation"
)

// FailureRecord captures a per-item failure without aborting the batch.
type FailureRecord struct {
	Identifier string `json:"identifier"`
	Stage      Stage  `json:"stage"`
	Message    string `json:"message"`
}

// BatchItem is the outcome for one batch input: exactly one of Result or
// Failure is set.
type BatchItem struct {
	Identifier string         `json:"identifier"`
	Result     *ScoreResult   `json:"result,omitempty"`
	Bundle     *MetricBundle  `json:"metrics,omitempty"`
	Text       string         `json:"text,omitempty"`
	Failure    *FailureRecord `json:"failure,omitempty"`
}

// BatchSummary aggregates batch outcomes. MeanScore is nil when no item
// succeeded, so systemic failure is not mistaken for uniformly poor quality.
type BatchSummary struct {
	CountOK     int      `json:"count_ok"`
	CountFailed int      `json:"count_failed"`
	MeanScore   *float64 `json:"mean_score,omitempty"`
	TotalErrors int      `json:"total_errors"`
}

// BatchResult holds per-item outcomes in input order plus the summary.
type BatchResult struct {
	Items   []BatchItem  `json:"per_item"`
	Summary BatchSummary `json:"summary"`
}
