// Package worker provides the worker implementations of the grocery fleet:
// the four pipeline roles the orchestrator resolves, and the receipt,
// expiration, tracking and recipe stages. Their reasoning logic is an
// external concern; the implementations here answer with their role profile
// on initialization and with placeholder structures (or a configured model's
// output) on work requests.
package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/grocerymesh/core"
	"github.com/hupe1980/grocerymesh/model"
)

// Profile describes a worker's persona. It doubles as the worker's handle
// payload: invoking a role worker with an empty initialization payload
// returns the profile.
type Profile struct {
	Role        string `json:"role"`
	Goal        string `json:"goal"`
	Backstory   string `json:"backstory"`
	Personality string `json:"personality,omitempty"`
}

// Payload renders the profile as a worker handle payload.
func (p Profile) Payload() core.Payload {
	out := core.Payload{
		"role":      p.Role,
		"goal":      p.Goal,
		"backstory": p.Backstory,
	}
	if p.Personality != "" {
		out["personality"] = p.Personality
	}
	return out
}

// Instructions flattens the profile into a system prompt for model-backed
// execution.
func (p Profile) Instructions() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are the %s.\nGoal: %s\nBackstory: %s", p.Role, p.Goal, p.Backstory)
	if p.Personality != "" {
		fmt.Fprintf(&sb, "\nPersonality: %s", p.Personality)
	}
	return sb.String()
}

// Base bundles the identity shared by all worker implementations. Embed it
// and supply a Run method to satisfy core.Worker.
type Base struct {
	name        string
	description string
}

// NewBase constructs a Base with the given identity.
func NewBase(name, description string) Base {
	return Base{name: name, description: description}
}

// Name returns the worker identifier used for routing.
func (b *Base) Name() string { return b.name }

// Description returns a human-readable summary of the worker's purpose.
func (b *Base) Description() string { return b.description }

// Options configures a role worker.
type Options struct {
	// Model optionally backs work requests with a reasoning model. Without
	// one the worker answers with its placeholder output.
	Model model.Model
}

// RoleWorker is a pipeline role agent. An empty payload initializes the
// worker and yields its profile as an opaque handle; non-empty payloads are
// work requests handled by the configured model, or answered with the
// profile when no model is wired.
type RoleWorker struct {
	Base
	profile Profile
	model   model.Model
}

// Compile-time interface assertion.
var _ core.Worker = (*RoleWorker)(nil)

// NewRoleWorker constructs a role worker from its profile.
func NewRoleWorker(name string, profile Profile, optFns ...func(o *Options)) *RoleWorker {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &RoleWorker{
		Base:    NewBase(name, profile.Goal),
		profile: profile,
		model:   opts.Model,
	}
}

// Profile returns the worker's persona.
func (w *RoleWorker) Profile() Profile { return w.profile }

// Run implements core.Worker.
func (w *RoleWorker) Run(ctx context.Context, input core.Payload) (core.Payload, error) {
	if len(input) == 0 || w.model == nil {
		return w.profile.Payload(), nil
	}
	return completeStructured(ctx, w.model, w.profile, input)
}

// completeStructured sends the input to the model primed with the profile
// and decodes the reply as a JSON object. This is the seam where the real,
// separately owned reasoning behavior plugs in.
func completeStructured(ctx context.Context, m model.Model, profile Profile, input core.Payload) (core.Payload, error) {
	prompt, err := json.Marshal(input)
	if err != nil {
		return nil, core.Errorf(core.KindValidation, "failed to encode work request: %v", err)
	}

	resp, err := m.Complete(ctx, model.Request{
		Instructions: profile.Instructions(),
		Input:        string(prompt),
	})
	if err != nil {
		return nil, core.Errorf(core.KindRemote, "model completion failed: %v", err)
	}

	var out core.Payload
	if err := json.Unmarshal([]byte(resp.Text), &out); err != nil {
		return nil, core.Errorf(core.KindRemote, "model returned non-structured output")
	}
	return out, nil
}
