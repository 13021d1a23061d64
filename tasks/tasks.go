// Package tasks builds the fixed set of named task descriptors that define
// the grocery management pipeline. Descriptors are purely declarative: each
// pairs a static description with the worker handle it is bound to and is
// reconstructed identically on every orchestration run, never stored.
package tasks

import (
	"github.com/hupe1980/grocerymesh/core"
	"github.com/hupe1980/grocerymesh/logging"
)

// The four worker roles the pipeline requires. All four are mandatory; there
// is no partial pipeline.
const (
	RoleGroceryManager               = "grocery_manager"
	RoleDemandForecaster             = "demand_forecaster"
	RoleWasteReductionSpecialist     = "waste_reduction_specialist"
	RoleInventoryOptimizationAnalyst = "inventory_optimization_analyst"
)

// Roles lists the required roles in pipeline order.
var Roles = []string{
	RoleGroceryManager,
	RoleDemandForecaster,
	RoleWasteReductionSpecialist,
	RoleInventoryOptimizationAnalyst,
}

// ErrMissingAgents is raised when Define is called without all four worker
// handles.
var ErrMissingAgents = core.Errorf(core.KindConfig, "Missing agent parameters")

// Task is an in-memory work-item definition bound to a resolved worker.
type Task struct {
	Name        string
	Description string
	Worker      core.Handle
}

var descriptions = map[string]string{
	RoleGroceryManager: "Manage the grocery inventory by monitoring stock levels, " +
		"tracking product demand, and ensuring efficient stock rotation. Provide " +
		"guidance to other agents on optimizing inventory and reducing waste. " +
		"Pay attention to the insights provided by the Demand Forecaster and the " +
		"Waste Reduction Specialist to make informed decisions.",
	RoleDemandForecaster: "Forecast future demand for grocery products based on " +
		"historical data and current trends. Provide insights to the Grocery " +
		"Manager and Inventory Optimization Analyst to optimize inventory levels " +
		"and reduce waste. Analyze sales data, market trends, and seasonal " +
		"variations to predict future demand accurately.",
	RoleWasteReductionSpecialist: "Minimize waste of grocery products by implementing " +
		"strategies to reduce spoilage and improve shelf life. Provide " +
		"recommendations to the Grocery Manager and Inventory Optimization " +
		"Analyst on how to reduce waste and improve sustainability. Analyze " +
		"current waste levels, identify areas for improvement, and recommend " +
		"effective waste reduction strategies.",
	RoleInventoryOptimizationAnalyst: "Optimize grocery inventory levels to minimize holding " +
		"costs and maximize product availability. Provide recommendations to the " +
		"Grocery Manager and Demand Forecaster on how to improve inventory " +
		"levels and reduce costs. Analyze current inventory levels, identify areas " +
		"for optimization, and recommend effective inventory optimization " +
		"strategies.",
}

// taskNames maps each role to the name of the task it carries out.
var taskNames = map[string]string{
	RoleGroceryManager:               "manage_inventory_task",
	RoleDemandForecaster:             "forecast_demand_task",
	RoleWasteReductionSpecialist:     "reduce_waste_task",
	RoleInventoryOptimizationAnalyst: "optimize_inventory_task",
}

// RegistryOptions configures the registry.
type RegistryOptions struct {
	Logger logging.Logger
}

// Registry produces the pipeline's task descriptors from resolved worker
// handles.
type Registry struct {
	logger logging.Logger
}

// NewRegistry constructs a Registry.
func NewRegistry(optFns ...func(o *RegistryOptions)) *Registry {
	opts := RegistryOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Registry{logger: logging.OrNoOp(opts.Logger)}
}

// Define returns the four task descriptors bound to the given role handles,
// in pipeline order. It fails with ErrMissingAgents when any required handle
// is missing or empty; callers never observe a partial set.
func (r *Registry) Define(handles map[string]core.Handle) ([]Task, error) {
	for _, role := range Roles {
		h, ok := handles[role]
		if !ok || len(h) == 0 {
			r.logger.Warn("tasks.define.missing_agent", "role", role)
			return nil, ErrMissingAgents
		}
	}

	out := make([]Task, 0, len(Roles))
	for _, role := range Roles {
		out = append(out, Task{
			Name:        taskNames[role],
			Description: descriptions[role],
			Worker:      handles[role],
		})
	}
	r.logger.Debug("tasks.define", "count", len(out))
	return out, nil
}
