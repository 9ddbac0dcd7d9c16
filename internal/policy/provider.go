package policy

import (
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"view-cache-policy/internal/interfaces"
	"view-cache-policy/internal/models"
)

// PoliciesFile is the on-disk shape of the per-view policy configuration.
type PoliciesFile struct {
	Views map[string]RawPolicy `yaml:"views"`
}

// Provider holds the normalized policies for every configured view. It is
// built once at load time and read-only afterwards; configuration changes
// load a fresh Provider rather than mutating this one.
type Provider struct {
	policies map[string]*models.PolicyConfig
	logger   *zap.Logger
}

// Ensure Provider implements the PolicyProvider interface
var _ interfaces.PolicyProvider = (*Provider)(nil)

// NewProvider wraps an already-normalized policy map.
func NewProvider(policies map[string]*models.PolicyConfig, logger *zap.Logger) *Provider {
	if policies == nil {
		policies = make(map[string]*models.PolicyConfig)
	}
	return &Provider{policies: policies, logger: logger}
}

// PolicyFor returns the policy configured for a view.
func (p *Provider) PolicyFor(view string) (*models.PolicyConfig, bool) {
	cfg, ok := p.policies[view]
	if !ok && p.logger != nil {
		p.logger.Debug("No policy configured for view", zap.String("view", view))
	}
	return cfg, ok
}

// Views returns the configured view names in sorted order.
func (p *Provider) Views() []string {
	views := make([]string, 0, len(p.policies))
	for view := range p.policies {
		views = append(views, view)
	}
	sort.Strings(views)
	return views
}

// LoadPolicies reads a YAML policies file, normalizes every view's raw
// policy and returns a Provider. Any validation error in any view rejects
// the whole file: evaluation never runs against a partially valid
// configuration.
func LoadPolicies(path string, logger *zap.Logger) (*Provider, error) {
	logger.Info("Loading view cache policies", zap.String("path", path))

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open policies file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var parsed PoliciesFile
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode YAML policies: %w", err)
	}

	if len(parsed.Views) == 0 {
		return nil, fmt.Errorf("policies validation failed: missing views section")
	}

	policies := make(map[string]*models.PolicyConfig, len(parsed.Views))
	for view, raw := range parsed.Views {
		cfg, errs := Normalize(raw)
		if len(errs) > 0 {
			return nil, fmt.Errorf("policies validation failed for view %q: %w", view, errs[0])
		}
		policies[view] = &cfg
	}

	logger.Info("View cache policies loaded", zap.Int("views", len(policies)))

	return NewProvider(policies, logger), nil
}
