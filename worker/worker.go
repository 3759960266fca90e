package worker

import (
	"context"
	"fmt"
	"maintdesk-backend/dal"
	"maintdesk-backend/models"
	"maintdesk-backend/repository"
	"maintdesk-backend/services"
	"maintdesk-backend/utils/logger"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron"
)

// Worker runs the periodic maintenance sweep: it ensures the DynamoDB tables
// exist and transitions past-due scheduled work to overdue, both on the
// equipment histories and on the schedule events.
type Worker struct {
	Worker *models.Worker // Use pointer to avoid copying mutex

	equipmentService services.EquipmentServiceInterface
	scheduleService  services.ScheduleServiceInterface
}

func NewWorker(ctx context.Context, cfg *models.Config, log logger.Logger) (*Worker, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if log == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	// Generate unique owner ID for this instance
	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		hostname = "localhost"
	}
	ownerID := fmt.Sprintf("sweep-%s-%s", hostname, uuid.New().String()[:8])

	workerConfig := &models.WorkerConfig{
		CronSchedule:      getCronScheduleForEnvironment(cfg.AppEnv),
		LockTimeout:       30 * time.Minute,
		LockRetryInterval: 5 * time.Second,
		MaxRetries:        5,
		RetryDelay:        2 * time.Second,
		Environment:       cfg.AppEnv,
		RequiredTables:    cfg.Tables,
		LockFilePath:      fmt.Sprintf("/tmp/maintdesk-sweep-%s.lock", cfg.AppEnv),
		StatusFilePath:    fmt.Sprintf("/tmp/maintdesk-sweep-status-%s.json", cfg.AppEnv),
		DryRun:            os.Getenv("MAINTENANCE_SWEEP_DRY_RUN") == "true",
		SweepOnStart:      os.Getenv("MAINTENANCE_SWEEP_ON_START") != "false",
	}

	if err := validateWorkerConfig(workerConfig); err != nil {
		return nil, fmt.Errorf("invalid worker configuration: %w", err)
	}

	dbClient, err := dal.NewDynamoDBClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	tableSetup := NewTableSetup(cfg, log, dbClient)
	repos := repository.NewRepository(dbClient, cfg, log)
	container := services.NewService(repos, log, cfg)

	lockManager := NewLockManager(workerConfig.LockFilePath, workerConfig.LockTimeout, workerConfig.Environment)
	statusManager := NewStatusManager(workerConfig.StatusFilePath)

	cronJob := cron.New()
	workerCtx, cancel := context.WithCancel(context.Background())

	return &Worker{
		Worker: &models.Worker{
			Config:        cfg,
			Logger:        log,
			CronJob:       cronJob,
			LockManager:   lockManager,
			StatusManager: statusManager.ToModelsStatusManager(),
			TableSetup:    tableSetup.ToModelsTableSetup(),
			WorkerConfig:  workerConfig,
			OwnerID:       ownerID,
			StopChan:      make(chan struct{}),
			Ctx:           workerCtx,
			Cancel:        cancel,
		},
		equipmentService: container.GetEquipmentService(),
		scheduleService:  container.GetScheduleService(),
	}, nil
}

// Start starts the sweep worker
func (w *Worker) Start() error {
	w.Worker.Mu.Lock()
	defer w.Worker.Mu.Unlock()

	if w.Worker.IsRunning {
		return fmt.Errorf("worker is already running")
	}

	if w.Worker.Ctx == nil || w.Worker.Cancel == nil {
		return fmt.Errorf("worker context is nil, worker may have been improperly initialized")
	}

	select {
	case <-w.Worker.Ctx.Done():
		return fmt.Errorf("worker context is cancelled, cannot start")
	default:
	}

	w.Worker.Logger.Infof("Starting maintenance sweep worker with schedule: %s", w.Worker.WorkerConfig.CronSchedule)
	w.Worker.Logger.Infof("Worker ID: %s", w.Worker.OwnerID)

	if err := w.Worker.CronJob.AddFunc(w.Worker.WorkerConfig.CronSchedule, w.executeSweepJobWithContext); err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	w.Worker.CronJob.Start()
	w.Worker.IsRunning = true

	w.Worker.Logger.Info("Maintenance sweep worker started successfully")

	if w.Worker.WorkerConfig.SweepOnStart {
		go func() {
			w.Worker.Logger.Info("Running initial maintenance sweep")
			w.executeSweepJobWithContext()
		}()
	}

	return nil
}

// executeSweepJobWithContext is the context-aware cron job function
func (w *Worker) executeSweepJobWithContext() {
	ctx, cancel := context.WithTimeout(w.Worker.Ctx, 15*time.Minute)
	defer cancel()

	w.executeSweepJobInternal(ctx)
}

// executeSweepJobInternal is the core sweep execution logic
func (w *Worker) executeSweepJobInternal(ctx context.Context) {
	select {
	case <-w.Worker.Ctx.Done():
		w.Worker.Logger.Info("Worker is stopping, skipping sweep")
		return
	case <-ctx.Done():
		w.Worker.Logger.Info("Context cancelled, skipping sweep")
		return
	default:
	}

	w.Worker.Logger.Info("Maintenance sweep job triggered")

	lockInfo, err := w.acquireLockWithContext(ctx)
	if err != nil {
		w.Worker.Logger.Warnf("Failed to acquire sweep lock: %v", err)
		return
	}

	defer func() {
		lockManager := &LockManager{LockManager: *w.Worker.LockManager}
		if err := lockManager.ReleaseLock(lockInfo); err != nil {
			w.Worker.Logger.Errorf("Failed to release sweep lock: %v", err)
		}
	}()

	if err := w.executeSweepWithErrorHandling(ctx); err != nil {
		w.Worker.Logger.Errorf("Maintenance sweep failed: %v", err)
		if err := w.handleSweepFailure(err); err != nil {
			w.Worker.Logger.Errorf("Failed to handle sweep failure: %v", err)
		}
		return
	}

	w.Worker.Logger.Info("Maintenance sweep completed successfully")
}

// executeSweepWithErrorHandling runs one table-ensure plus sweep cycle
func (w *Worker) executeSweepWithErrorHandling(ctx context.Context) error {
	statusManager := &StatusManager{StatusManager: *w.Worker.StatusManager}

	result := &models.ExecutionResult{
		StartTime:     time.Now(),
		Status:        models.StatusInitializing,
		Environment:   w.Worker.Config.AppEnv,
		TablesEnsured: make([]models.TableStatus, 0),
		Metadata:      make(map[string]any),
	}

	if err := statusManager.SaveStatus(result); err != nil {
		w.Worker.Logger.Errorf("Failed to save initial status: %v", err)
	}

	if w.Worker.WorkerConfig.DryRun {
		w.Worker.Logger.Info("Running in DRY RUN mode - no changes will be made")
		result.Success = true
		result.Status = models.StatusCompleted
		result.Metadata["dry_run"] = true
		return statusManager.SaveStatus(result)
	}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("maintenance sweep panicked: %v", r)
			w.Worker.Logger.Errorf("Sweep panic: %v", err)
			statusManager.MarkFailed(err.Error())
		}
	}()

	// Step 1: make sure the tables exist
	if err := statusManager.UpdateProgress(models.StatusCreatingTables, "Ensuring DynamoDB tables", nil); err != nil {
		w.Worker.Logger.Warnf("Failed to update status: %v", err)
	}
	tableSetup := &TableSetup{TableSetup: *w.Worker.TableSetup}
	if err := tableSetup.EnsureTables(ctx, statusManager); err != nil {
		statusManager.MarkFailed(err.Error())
		return err
	}

	// Step 2: run the overdue sweep for equipment histories and events
	if err := statusManager.UpdateProgress(models.StatusSweeping, "Marking past-due maintenance overdue", nil); err != nil {
		w.Worker.Logger.Warnf("Failed to update status: %v", err)
	}

	asOf := models.DateOf(time.Now())

	recordsMarked, err := w.equipmentService.RecomputeDueStatus(ctx, asOf)
	if err != nil {
		statusManager.MarkFailed(err.Error())
		return fmt.Errorf("equipment sweep failed: %w", err)
	}

	eventsMarked, err := w.scheduleService.MarkOverdueEvents(ctx, asOf)
	if err != nil {
		statusManager.MarkFailed(err.Error())
		return fmt.Errorf("event sweep failed: %w", err)
	}

	if err := statusManager.RecordSweepOutcome(recordsMarked+eventsMarked, recordsMarked, eventsMarked); err != nil {
		w.Worker.Logger.Warnf("Failed to record sweep outcome: %v", err)
	}

	w.Worker.Logger.Infof("Sweep done: %d history records and %d events marked overdue", recordsMarked, eventsMarked)
	return statusManager.MarkCompleted()
}

// handleSweepFailure handles failures with retry bookkeeping
func (w *Worker) handleSweepFailure(sweepErr error) error {
	statusManager := &StatusManager{StatusManager: *w.Worker.StatusManager}

	retryCount, err := statusManager.GetRetryCount()
	if err != nil {
		w.Worker.Logger.Warnf("Failed to get retry count, assuming 0: %v", err)
		retryCount = 0
	}

	if retryCount >= w.Worker.WorkerConfig.MaxRetries {
		w.Worker.Logger.Errorf("Maximum retries (%d) exceeded, waiting for next scheduled run", w.Worker.WorkerConfig.MaxRetries)
		return statusManager.MarkFailed(fmt.Sprintf("Max retries exceeded: %v", sweepErr))
	}

	if err := statusManager.IncrementRetryCount(); err != nil {
		return fmt.Errorf("failed to increment retry count: %w", err)
	}

	retryDelay := w.Worker.WorkerConfig.RetryDelay * time.Duration(retryCount+1)

	w.Worker.Logger.Warnf("Sweep failed (attempt %d/%d), will retry in %v: %v",
		retryCount+1, w.Worker.WorkerConfig.MaxRetries+1, retryDelay, sweepErr)

	return statusManager.UpdateProgress(models.StatusRetrying,
		fmt.Sprintf("Retrying after failure: %v", sweepErr),
		map[string]any{
			"next_retry_at": time.Now().Add(retryDelay),
			"last_error":    sweepErr.Error(),
		})
}

// acquireLockWithContext tries to acquire the lock with cancellation support
func (w *Worker) acquireLockWithContext(ctx context.Context) (*models.LockInfo, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	type result struct {
		lockInfo *models.LockInfo
		err      error
	}

	resultChan := make(chan result, 1)

	go func() {
		lockManager := &LockManager{LockManager: *w.Worker.LockManager}
		lockInfo, err := lockManager.AcquireLock(w.Worker.OwnerID)
		resultChan <- result{lockInfo, err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("lock acquisition cancelled: %w", ctx.Err())
	case res := <-resultChan:
		return res.lockInfo, res.err
	}
}

// GetStatus returns the result of the last sweep
func (w *Worker) GetStatus() (*models.ExecutionResult, error) {
	statusManager := &StatusManager{StatusManager: *w.Worker.StatusManager}
	return statusManager.LoadStatus()
}

// IsRunning returns whether the worker is currently running
func (w *Worker) IsRunning() bool {
	w.Worker.Mu.RLock()
	defer w.Worker.Mu.RUnlock()
	return w.Worker.IsRunning
}

// ForceSweep triggers an immediate sweep execution (admin use)
func (w *Worker) ForceSweep() error {
	go w.executeSweepJobWithContext()
	return nil
}

// Stop stops the sweep worker
func (w *Worker) Stop() error {
	var err error
	w.Worker.StopOnce.Do(func() {
		w.Worker.Mu.Lock()
		defer w.Worker.Mu.Unlock()

		if !w.Worker.IsRunning {
			return
		}

		w.Worker.Logger.Info("Stopping maintenance sweep worker")

		// Cancel context first to signal all operations to stop
		if w.Worker.Cancel != nil {
			w.Worker.Cancel()
		}

		if w.Worker.CronJob != nil {
			w.Worker.CronJob.Stop()
			w.Worker.Logger.Info("Cron jobs stopped")
		}

		w.Worker.IsRunning = false

		select {
		case <-w.Worker.StopChan:
			// Already closed
		default:
			close(w.Worker.StopChan)
		}

		w.Worker.Logger.Info("Maintenance sweep worker stopped")
	})

	return err
}

// validateWorkerConfig validates the worker configuration
func validateWorkerConfig(config *models.WorkerConfig) error {
	if config == nil {
		return fmt.Errorf("worker config cannot be nil")
	}

	if config.Environment == "" {
		return fmt.Errorf("environment is required")
	}

	if config.LockTimeout <= 0 {
		return fmt.Errorf("lock timeout must be positive")
	}

	if config.MaxRetries < 0 {
		return fmt.Errorf("max retries cannot be negative")
	}

	if config.RetryDelay <= 0 {
		return fmt.Errorf("retry delay must be positive")
	}

	if len(config.RequiredTables) == 0 {
		return fmt.Errorf("at least one required table must be specified")
	}

	if config.LockFilePath == "" {
		return fmt.Errorf("lock file path is required")
	}

	if config.StatusFilePath == "" {
		return fmt.Errorf("status file path is required")
	}

	if config.CronSchedule != "" {
		cronParser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
		if _, err := cronParser.Parse(config.CronSchedule); err != nil {
			return fmt.Errorf("invalid cron schedule '%s': %w", config.CronSchedule, err)
		}
	}

	return nil
}

// getCronScheduleForEnvironment returns environment-specific sweep schedules
func getCronScheduleForEnvironment(env string) string {
	switch env {
	case "development":
		return "0 * * * * *" // Every minute for development
	case "testing":
		return "0 */5 * * * *" // Every 5 minutes for testing
	case "production":
		return "0 0 * * * *" // Hourly for production
	default:
		return "0 */10 * * * *" // Every 10 minutes default
	}
}
