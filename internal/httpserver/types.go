package httpserver

import (
	"view-cache-policy/internal/models"
)

// EvaluateRequest carries the inputs of one cache-policy evaluation as the
// view-execution pipeline submits them.
type EvaluateRequest struct {
	View         string                       `json:"view"`
	Display      string                       `json:"display,omitempty"`
	Contributors []models.ContributedMetadata `json:"contributors,omitempty"`
	BaseTags     []string                     `json:"base_tags,omitempty"`
	BaseContexts []string                     `json:"base_contexts,omitempty"`
	Tokens       map[string]string            `json:"tokens,omitempty"`
	// Data is the rendered output to store; only used by /cache/set.
	Data string `json:"data,omitempty"`
}

// EvaluateResponse returns the computed descriptor
type EvaluateResponse struct {
	Success    bool                    `json:"success"`
	Descriptor *models.CacheDescriptor `json:"descriptor,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// CacheResponse represents a cache get/set operation response
type CacheResponse struct {
	Success     bool                    `json:"success"`
	Found       bool                    `json:"found,omitempty"`
	Data        string                  `json:"data,omitempty"`
	Key         string                  `json:"key,omitempty"`
	CacheStatus models.CacheStatus      `json:"cache_status,omitempty"`
	Descriptor  *models.CacheDescriptor `json:"descriptor,omitempty"`
	Error       string                  `json:"error,omitempty"`
}

// InvalidateRequest names the cache tags to invalidate
type InvalidateRequest struct {
	Tags []string `json:"tags"`
}

// InvalidateResponse acknowledges a tag invalidation
type InvalidateResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
