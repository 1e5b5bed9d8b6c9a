package mcp

import (
	"context"

	"github.com/viant/mcp-tooldef/mcp/config"
	"github.com/viant/mcp-tooldef/mcp/naming"
	"github.com/viant/mcp-tooldef/mcp/tool"
)

// Service bundles configuration, the tool catalog and the naming policy used
// to render responses.  All bootstrap logic lives in bootstrap.go.
// Service is not safe for concurrent mutation; callers adding tools from
// multiple goroutines must synchronise externally.
type Service struct {
	config    *config.Config
	configURL string
	catalog   *tool.Collection
	policy    naming.Policy
	pageSize  int
}

// Config returns the effective configuration instance. Callers must treat the
// returned object as read-only.
func (s *Service) Config() *config.Config { return s.config }

// Policy returns naming policy used by Render
func (s *Service) Policy() naming.Policy { return s.policy }

// PageSize returns number of tools per ListTools page, 0 means unlimited
func (s *Service) PageSize() int { return s.pageSize }

// Option modifies a service instance before it is initialised.
type Option func(*Service)

// WithConfig sets a configuration instance.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithConfigURL loads configuration from a file path or afs URL during New.
func WithConfigURL(URL string) Option {
	return func(s *Service) {
		s.configURL = URL
	}
}

// WithCollection seeds the catalog; tools defined in configuration are
// appended after these.
func WithCollection(collection *tool.Collection) Option {
	return func(s *Service) {
		s.catalog = collection
	}
}

// WithPolicy overrides the configured naming policy.
func WithPolicy(policy naming.Policy) Option {
	return func(s *Service) {
		s.policy = policy
	}
}

// WithPageSize overrides the configured page size.
func WithPageSize(size int) Option {
	return func(s *Service) {
		s.pageSize = size
	}
}

// New constructs a new service instance.
func New(ctx context.Context, opts ...Option) (*Service, error) {
	svc := &Service{}
	for _, opt := range opts {
		opt(svc)
	}
	if err := svc.init(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// NewWithConfig is a shortcut for New with WithConfig as the first option.
func NewWithConfig(ctx context.Context, cfg *config.Config, opts ...Option) (*Service, error) {
	return New(ctx, append([]Option{WithConfig(cfg)}, opts...)...)
}
