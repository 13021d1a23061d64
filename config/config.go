// Package config loads deployment configuration from the environment:
// the region and table identifiers, the per-role worker function names and
// the credential for the external reasoning API. Values are injected into
// constructors explicitly; nothing here is a process-wide singleton.
package config

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/hupe1980/grocerymesh/orchestrator"
	"github.com/hupe1980/grocerymesh/store"
	"github.com/hupe1980/grocerymesh/tasks"
)

// Config carries the environment-provided settings. All worker names
// default to their in-process identifiers so a local fleet needs no
// environment at all.
type Config struct {
	Region    string `envconfig:"REGION"`
	TableName string `envconfig:"TABLE_NAME" default:"grocery-inventory"`

	GroceryManagerWorker   string `envconfig:"GROCERY_MANAGER_WORKER"`
	DemandForecasterWorker string `envconfig:"DEMAND_FORECASTER_WORKER"`
	WasteReductionWorker   string `envconfig:"WASTE_REDUCTION_SPECIALIST_WORKER"`
	InventoryAnalystWorker string `envconfig:"INVENTORY_OPTIMIZATION_ANALYST_WORKER"`
	TasksWorker            string `envconfig:"TASKS_WORKER"`
	DatabaseWorker         string `envconfig:"DATABASE_WORKER"`

	// OpenAIAPIKey backs the optional reasoning model of the role workers.
	// The key is consumed by the model SDK; it is never logged.
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`
}

// Load reads the configuration from GROCERYMESH_-prefixed environment
// variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("grocerymesh", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WorkerNames maps each pipeline role to its configured worker name,
// omitting roles left at their defaults.
func (c *Config) WorkerNames() map[string]string {
	names := map[string]string{
		tasks.RoleGroceryManager:               c.GroceryManagerWorker,
		tasks.RoleDemandForecaster:             c.DemandForecasterWorker,
		tasks.RoleWasteReductionSpecialist:     c.WasteReductionWorker,
		tasks.RoleInventoryOptimizationAnalyst: c.InventoryAnalystWorker,
	}
	for role, name := range names {
		if name == "" {
			delete(names, role)
		}
	}
	return names
}

// Apply copies the configuration onto orchestrator options.
func (c *Config) Apply(o *orchestrator.Options) {
	o.WorkerNames = c.WorkerNames()
	if c.TasksWorker != "" {
		o.TasksWorker = c.TasksWorker
	}
	if c.DatabaseWorker != "" {
		o.DatabaseWorker = c.DatabaseWorker
	}
}

// DatabaseWorkerName returns the configured store worker name, defaulting
// to the in-process identifier.
func (c *Config) DatabaseWorkerName() string {
	if c.DatabaseWorker != "" {
		return c.DatabaseWorker
	}
	return store.DefaultWorkerName
}
