package worker

import (
	"context"

	"github.com/hupe1980/grocerymesh/core"
	"github.com/hupe1980/grocerymesh/internal/util"
	"github.com/hupe1980/grocerymesh/model"
)

// StageWorker is a pipeline stage with a declared input contract and a
// placeholder body. An empty payload yields the profile handle; a work
// request is validated against the required fields, then answered by the
// configured model or the placeholder.
type StageWorker struct {
	Base
	profile     Profile
	required    []string
	placeholder func(input core.Payload) core.Payload
	model       model.Model
}

// Compile-time interface assertion.
var _ core.Worker = (*StageWorker)(nil)

func newStageWorker(
	name string,
	profile Profile,
	required []string,
	placeholder func(input core.Payload) core.Payload,
	optFns ...func(o *Options),
) *StageWorker {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &StageWorker{
		Base:        NewBase(name, profile.Goal),
		profile:     profile,
		required:    required,
		placeholder: placeholder,
		model:       opts.Model,
	}
}

// Profile returns the worker's persona.
func (w *StageWorker) Profile() Profile { return w.profile }

// Run implements core.Worker.
func (w *StageWorker) Run(ctx context.Context, input core.Payload) (core.Payload, error) {
	if len(input) == 0 {
		return w.profile.Payload(), nil
	}
	if err := util.RequireFields(input, w.required); err != nil {
		return nil, core.Errorf(core.KindValidation, "%v", err)
	}
	if w.model != nil {
		return completeStructured(ctx, w.model, w.profile, input)
	}
	return w.placeholder(input), nil
}
