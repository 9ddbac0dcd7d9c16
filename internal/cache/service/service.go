package service

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"view-cache-policy/internal/cache"
	"view-cache-policy/internal/cache/multi"
	"view-cache-policy/internal/interfaces"
	"view-cache-policy/internal/metrics"
	"view-cache-policy/internal/models"
	"view-cache-policy/internal/policy"
	"view-cache-policy/internal/tokens"
)

// ErrUnknownView is returned when a view has no cache policy configured.
var ErrUnknownView = errors.New("no cache policy configured for view")

// EvaluationService wires the policy engine to the artifact store: it
// computes one CacheDescriptor per request and uses it to key, tag and bound
// the stored rendered output.
type EvaluationService struct {
	multiStore *multi.MultiStore
	keyBuilder interfaces.KeyBuilder
	policies   interfaces.PolicyProvider
	logger     *zap.Logger
}

// NewEvaluationService creates an EvaluationService over L1/L2 store levels
func NewEvaluationService(l1Store, l2Store interfaces.Store, policies interfaces.PolicyProvider, logger *zap.Logger) *EvaluationService {
	stores := []interfaces.Store{l1Store, l2Store}
	multiStore := multi.NewMultiStore(stores, logger).(*multi.MultiStore)

	return &EvaluationService{
		multiStore: multiStore,
		keyBuilder: cache.NewKeyBuilder(),
		policies:   policies,
		logger:     logger,
	}
}

// EvaluationInput carries the request-scoped inputs of one cache-policy
// evaluation. Contributors, base sets and tokens are gathered by the
// view-execution layer; Now is explicit so evaluations stay deterministic.
type EvaluationInput struct {
	View         string                       `json:"view"`
	Display      string                       `json:"display,omitempty"`
	Contributors []models.ContributedMetadata `json:"contributors,omitempty"`
	BaseTags     []string                     `json:"base_tags,omitempty"`
	BaseContexts []string                     `json:"base_contexts,omitempty"`
	Tokens       map[string]string            `json:"tokens,omitempty"`
	Now          time.Time                    `json:"-"`
}

// GetResponse represents the result of a cache get operation
type GetResponse struct {
	Found      bool                   `json:"found"`
	Data       []byte                 `json:"data,omitempty"`
	Key        string                 `json:"key"`
	Bypass     bool                   `json:"bypass"`
	Level      int                    `json:"level"`
	Descriptor models.CacheDescriptor `json:"descriptor"`
}

// Evaluate computes the cache descriptor for one request. It is the single
// policy entry point: pure over the stored PolicyConfig plus the input.
func (s *EvaluationService) Evaluate(in EvaluationInput) (*models.CacheDescriptor, error) {
	cfg, ok := s.policies.PolicyFor(in.View)
	if !ok {
		metrics.RecordEvaluation("unknown_view")
		return nil, fmt.Errorf("%w: %s", ErrUnknownView, in.View)
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	var transform policy.TagTransform
	if len(in.Tokens) > 0 {
		replacer := tokens.NewMapReplacer(in.Tokens)
		transform = replacer.Transform
	}

	descriptor := policy.ComputeDescriptor(cfg, now, in.Contributors, in.BaseTags, in.BaseContexts, transform)
	metrics.RecordEvaluation("ok")

	return &descriptor, nil
}

// Get retrieves the cached rendered output for one view execution. The
// descriptor is evaluated first: a max-age of zero bypasses the store
// entirely, and an entry older than the results cutoff is discarded since
// the data it was rendered from is already stale.
func (s *EvaluationService) Get(in EvaluationInput) (*GetResponse, error) {
	descriptor, err := s.Evaluate(in)
	if err != nil {
		return nil, err
	}

	key, err := s.keyBuilder.Build(in.View, in.Display, descriptor.Contexts)
	if err != nil {
		return nil, fmt.Errorf("failed to build cache key: %w", err)
	}

	metrics.RecordCacheRequest()

	if descriptor.MaxAge == 0 {
		metrics.RecordCacheBypass()
		return &GetResponse{Key: key, Bypass: true, Level: -1, Descriptor: *descriptor}, nil
	}

	timer := metrics.TimeCacheOperation("get", "multi")
	defer timer()

	entry, level, found := s.multiStore.GetWithLevel(key)
	if found && descriptor.ResultsExpireAt != nil && entry.CreatedAt < descriptor.ResultsExpireAt.Unix() {
		s.multiStore.Delete(key)
		found = false
	}

	if !found {
		metrics.RecordCacheMiss()
		return &GetResponse{Key: key, Level: -1, Descriptor: *descriptor}, nil
	}

	metrics.RecordCacheHit(levelName(level))

	return &GetResponse{
		Found:      true,
		Data:       entry.Data,
		Key:        key,
		Level:      level,
		Descriptor: *descriptor,
	}, nil
}

// Set stores rendered output under the descriptor's key, tags and max-age.
// It returns the descriptor so the caller can propagate max-age downstream.
func (s *EvaluationService) Set(in EvaluationInput, data []byte) (*models.CacheDescriptor, error) {
	descriptor, err := s.Evaluate(in)
	if err != nil {
		return nil, err
	}

	if descriptor.MaxAge == 0 {
		metrics.RecordCacheBypass()
		return descriptor, nil
	}

	key, err := s.keyBuilder.Build(in.View, in.Display, descriptor.Contexts)
	if err != nil {
		return nil, fmt.Errorf("failed to build cache key: %w", err)
	}

	timer := metrics.TimeCacheOperation("set", "multi")
	defer timer()

	s.multiStore.Set(key, data, descriptor.Tags, descriptor.MaxAge)

	return descriptor, nil
}

// Invalidate removes every cached artifact tagged with any of the tags from
// all store levels.
func (s *EvaluationService) Invalidate(tags []string) {
	if len(tags) == 0 {
		return
	}

	s.logger.Info("Invalidating cache tags", zap.Strings("tags", tags))
	metrics.RecordInvalidation(len(tags))

	timer := metrics.TimeCacheOperation("invalidate", "multi")
	defer timer()

	s.multiStore.InvalidateTags(tags)
}

func levelName(level int) string {
	switch level {
	case 0:
		return "l1"
	case 1:
		return "l2"
	default:
		return "unknown"
	}
}
