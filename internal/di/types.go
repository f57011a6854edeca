// Package di provides dependency injection wiring and initialization.
//
// The Container holds every long-lived dependency and is the single source of
// truth for service instances handed to the HTTP server and the MCP tools.
package di

import (
	"errors"

	"github.com/aristath/finwell/internal/database"
	"github.com/aristath/finwell/internal/modules/analysis"
	"github.com/aristath/finwell/internal/modules/budgeting"
	"github.com/aristath/finwell/internal/modules/cash_flows"
	"github.com/aristath/finwell/internal/modules/debt"
	"github.com/aristath/finwell/internal/modules/expenses"
	"github.com/aristath/finwell/internal/modules/profiles"
	"github.com/aristath/finwell/internal/reliability"
	"github.com/aristath/finwell/internal/tools"
)

// Container holds all application dependencies
type Container struct {
	// Nil when the in-memory store is configured
	ProfilesDB *database.DB

	ProfileRepo   profiles.RepositoryInterface
	ProfileSource analysis.ProfileSource

	AnalysisService  *analysis.Service
	BudgetingService *budgeting.Service
	ExpensesService  *expenses.Service
	DebtService      *debt.Service
	CashFlowsService *cash_flows.Service

	// Nil when backups are not configured
	BackupService *reliability.BackupService
}

// ToolServices exposes the services the MCP tools call into
func (c *Container) ToolServices() tools.Services {
	return tools.Services{
		Analysis:  c.AnalysisService,
		Budgeting: c.BudgetingService,
		Expenses:  c.ExpensesService,
		Debt:      c.DebtService,
		CashFlows: c.CashFlowsService,
	}
}

// Databases lists the open databases by name
func (c *Container) Databases() map[string]*database.DB {
	dbs := make(map[string]*database.DB)
	if c.ProfilesDB != nil {
		dbs[c.ProfilesDB.Name()] = c.ProfilesDB
	}
	return dbs
}

// Close releases the databases
func (c *Container) Close() error {
	var errs []error
	for _, db := range c.Databases() {
		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// JobInstances holds the scheduled jobs for manual triggering
type JobInstances struct {
	CheckWALCheckpoints Job
	DailyMaintenance    Job
	// Nil when backups are not configured
	BackupProfiles      Job
}
