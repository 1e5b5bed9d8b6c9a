package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/mcp-tooldef/mcp/naming"
	"github.com/viant/mcp-tooldef/mcp/tool"
	"gopkg.in/yaml.v3"
)

// Config describes a tool collection. ID and NextCursor are applied by
// Collection only; a Service assigns both per ListTools page.
type Config struct {
	ID         int        `yaml:"id,omitempty" json:"id,omitempty"`
	NextCursor string     `yaml:"nextCursor,omitempty" json:"nextCursor,omitempty"`
	PageSize   int        `yaml:"pageSize,omitempty" json:"pageSize,omitempty"`
	Naming     *Naming    `yaml:"naming,omitempty" json:"naming,omitempty"`
	Tools      []*ToolDef `yaml:"tools,omitempty" json:"tools,omitempty"`
}

// Naming controls wire field naming
type Naming struct {
	Policy string   `yaml:"policy,omitempty" json:"policy,omitempty"`
	Exempt []string `yaml:"exempt,omitempty" json:"exempt,omitempty"`
}

// ToolDef describes a tool
type ToolDef struct {
	Name        string    `yaml:"name" json:"name"`
	Description string    `yaml:"description" json:"description"`
	Input       *InputDef `yaml:"input,omitempty" json:"input,omitempty"`
}

// InputDef describes tool input schema
type InputDef struct {
	Type       string         `yaml:"type,omitempty" json:"type,omitempty"`
	Properties []*PropertyDef `yaml:"properties,omitempty" json:"properties,omitempty"`
}

// PropertyDef describes an input property
type PropertyDef struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description" json:"description"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
}

// Load reads config from a file path or any afs supported URL
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", URL, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", URL, err)
	}
	return cfg, nil
}

// Parse decodes YAML or JSON config
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks naming policy and tool definitions
func (c *Config) Validate() error {
	var errs []error
	if _, err := c.Policy(); err != nil {
		errs = append(errs, err)
	}
	if c.PageSize < 0 {
		errs = append(errs, fmt.Errorf("invalid pageSize: %d", c.PageSize))
	}
	collection, err := c.Collection()
	if err != nil {
		errs = append(errs, err)
	} else if err = collection.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Policy returns configured naming policy
func (c *Config) Policy() (naming.Policy, error) {
	if c.Naming == nil {
		return naming.NewCamelCase(), nil
	}
	return naming.Lookup(c.Naming.Policy, c.Naming.Exempt...)
}

// Collection builds tool collection
func (c *Config) Collection() (*tool.Collection, error) {
	var opts []tool.CollectionOption
	if c.ID != 0 {
		opts = append(opts, tool.WithID(c.ID))
	}
	if c.NextCursor != "" {
		opts = append(opts, tool.WithNextCursor(c.NextCursor))
	}
	ret := tool.NewCollection(opts...)
	var errs []error
	for i, def := range c.Tools {
		if def == nil {
			continue
		}
		aTool := tool.New(def.Name, def.Description)
		if def.Input != nil {
			aTool.Input(def.Input.Type, func(input *tool.Input) {
				for _, prop := range def.Input.Properties {
					if prop == nil {
						continue
					}
					input.Property(prop.Name, prop.Type, prop.Description, tool.RequiredIf(prop.Required))
				}
			})
			if err := aTool.InputSchema.Err(); err != nil {
				errs = append(errs, fmt.Errorf("tools[%d] %q: %w", i, def.Name, err))
			}
		}
		ret.AddTool(aTool)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return ret, nil
}
