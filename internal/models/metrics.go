package models

import "time"

// UsageMetrics summarises in-process counters for the shell.
type UsageMetrics struct {
	Transitions         uint64    `json:"transitions"`
	RejectedTransitions uint64    `json:"rejected_transitions"`
	ValidationFailures  uint64    `json:"validation_failures"`
	MaterialQueries     uint64    `json:"material_queries"`
	AverageQueryResults float64   `json:"average_query_results"`
	UploadsCompleted    uint64    `json:"uploads_completed"`
	Goroutines          int       `json:"goroutines"`
	GeneratedAt         time.Time `json:"generated_at"`
}
