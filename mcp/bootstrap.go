package mcp

import (
	"context"
	"fmt"

	"github.com/viant/mcp-tooldef/mcp/config"
	"github.com/viant/mcp-tooldef/mcp/tool"
)

// init orchestrates configuration loading, validation and catalog assembly.
func (s *Service) init(ctx context.Context) error {
	if err := s.loadConfig(ctx); err != nil {
		return err
	}
	s.initDefaults()

	// Validate configuration early to fail fast when possible.
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := s.initPolicy(); err != nil {
		return err
	}
	if err := s.initCatalog(); err != nil {
		return err
	}
	if s.pageSize < 0 {
		return fmt.Errorf("invalid page size: %d", s.pageSize)
	}
	return nil
}

func (s *Service) loadConfig(ctx context.Context) error {
	if s.configURL == "" {
		return nil
	}
	if s.config != nil {
		return fmt.Errorf("config and config URL %q are mutually exclusive", s.configURL)
	}
	cfg, err := config.Load(ctx, s.configURL)
	if err != nil {
		return err
	}
	s.config = cfg
	return nil
}

// initDefaults applies fall-back values for optional settings that were not
// supplied through options.
func (s *Service) initDefaults() {
	if s.config == nil {
		s.config = &config.Config{}
	}
	if s.catalog == nil {
		s.catalog = tool.NewCollection()
	}
	if s.pageSize == 0 {
		s.pageSize = s.config.PageSize
	}
}

func (s *Service) initPolicy() error {
	if s.policy != nil {
		return nil
	}
	policy, err := s.config.Policy()
	if err != nil {
		return err
	}
	s.policy = policy
	return nil
}

// initCatalog copies configured tools only; request id and cursor are
// per ListTools call.
func (s *Service) initCatalog() error {
	configured, err := s.config.Collection()
	if err != nil {
		return err
	}
	for _, aTool := range configured.Tools {
		s.catalog.AddTool(aTool)
	}
	if err = s.catalog.Validate(); err != nil {
		return fmt.Errorf("invalid tool catalog: %w", err)
	}
	return nil
}
