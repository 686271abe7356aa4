// Package journalassist provides a high-level façade over the orchestration
// engine and agent registry, enabling construction of a multi-agent journal
// assistant in a few lines. Most applications interact with this package by:
//  1. Creating a Crew via New() (optionally supplying a structured logger)
//  2. Registering one or more agent capabilities
//  3. Running an agent sequence over a user input via Run
//
// The façade delegates orchestration to engine.Engine while keeping setup
// ergonomics concise. Defaults are safe for local development and testing;
// the HTTP service in cmd/journalassist wires the same pieces behind a
// chi router.
package journalassist

import (
	"context"

	"github.com/Akesh-M/JournalAssistCrew/core"
	"github.com/Akesh-M/JournalAssistCrew/engine"
	"github.com/Akesh-M/JournalAssistCrew/logging"
)

// Options configures the Crew instance.
type Options struct {
	// Logger defaults to the no-op logger when nil.
	Logger logging.Logger
}

// Crew aggregates the agent registry and the orchestration engine.
type Crew struct {
	registry *core.Registry
	engine   *engine.Engine
}

// New creates a Crew with optional overrides.
func New(optFns ...func(o *Options)) *Crew {
	opts := Options{Logger: logging.NoOpLogger{}}

	for _, fn := range optFns {
		fn(&opts)
	}

	registry := core.NewRegistry()
	eng := engine.New(registry, func(o *engine.Options) {
		o.Logger = opts.Logger
	})

	return &Crew{registry: registry, engine: eng}
}

// RegisterAgent adds a capability to the underlying registry. Registration
// should finish before serving begins.
func (c *Crew) RegisterAgent(capability core.Capability) {
	c.registry.Register(capability)
}

// Agents returns the registered agents for discovery.
func (c *Crew) Agents() []core.Info { return c.registry.List() }

// Registry exposes the underlying registry for boundary layers.
func (c *Crew) Registry() *core.Registry { return c.registry }

// Engine exposes the underlying engine for boundary layers.
func (c *Crew) Engine() *engine.Engine { return c.engine }

// Run executes the agent sequence over the user input and returns the final
// run result.
func (c *Crew) Run(ctx context.Context, input string, sequence ...string) (*engine.Result, error) {
	return c.engine.Run(ctx, input, sequence)
}
