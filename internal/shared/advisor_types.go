package shared

import (
	"time"
)

// TokenUsage tracks the tokens consumed by a model request.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Model            string
}

// AdvisorMeta holds operational metadata for a single advisory execution.
type AdvisorMeta struct {
	AdvisorName string
	Usage       TokenUsage
	Latency     time.Duration
}
