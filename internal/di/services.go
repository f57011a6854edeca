package di

import (
	"context"
	"fmt"
	"time"

	"github.com/aristath/finwell/internal/config"
	"github.com/aristath/finwell/internal/modules/analysis"
	"github.com/aristath/finwell/internal/modules/budgeting"
	"github.com/aristath/finwell/internal/modules/cash_flows"
	"github.com/aristath/finwell/internal/modules/debt"
	"github.com/aristath/finwell/internal/modules/expenses"
	"github.com/aristath/finwell/internal/modules/generator"
	"github.com/aristath/finwell/internal/reliability"
	"github.com/rs/zerolog"
)

// InitializeServices creates the planning services and, when configured, the backup service
func InitializeServices(container *Container, cfg *config.Config, log zerolog.Logger) error {
	repo := container.ProfileRepo

	if container.ProfileSource == nil {
		container.ProfileSource = generator.New(uint64(time.Now().UnixNano()))
	}

	container.AnalysisService = analysis.NewService(repo, container.ProfileSource, log)
	container.BudgetingService = budgeting.NewService(repo, log)
	container.ExpensesService = expenses.NewService(repo, log)
	container.DebtService = debt.NewService(repo, log)
	container.CashFlowsService = cash_flows.NewService(repo, log)

	if !cfg.Backup.Enabled() || container.ProfilesDB == nil {
		return nil
	}

	b := cfg.Backup
	store, err := reliability.NewS3Client(context.Background(), reliability.S3Config{
		Bucket:    b.Bucket,
		Endpoint:  b.Endpoint,
		Region:    b.Region,
		AccessKey: b.AccessKey,
		SecretKey: b.SecretKey,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to create backup client: %w", err)
	}
	container.BackupService = reliability.NewBackupService(container.ProfilesDB, store, cfg.DataDir, log)

	return nil
}
