package models

import (
	"context"
	"maintdesk-backend/utils/logger"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/robfig/cron"
)

// DBClient interface to avoid circular dependency
type DBClient interface {
	CreateTable(ctx context.Context, input *dynamodb.CreateTableInput) error
	DescribeTable(ctx context.Context, tableName string) (*dynamodb.DescribeTableOutput, error)
}

// StatusManager handles sweep status tracking
type StatusManager struct {
	StatusFilePath string
}

// LockManager handles locking for the maintenance sweep
type LockManager struct {
	LockFilePath string
	LockTimeout  time.Duration
	Environment  string
}

// Worker manages the table setup and the overdue sweep cron job
type Worker struct {
	Config        *Config
	Logger        logger.Logger
	CronJob       *cron.Cron
	LockManager   *LockManager
	StatusManager *StatusManager
	TableSetup    *TableSetup

	// Worker configuration
	WorkerConfig *WorkerConfig
	OwnerID      string
	IsRunning    bool
	StopChan     chan struct{}

	// Synchronization and state management
	Mu       sync.RWMutex
	Ctx      context.Context
	Cancel   context.CancelFunc
	StopOnce sync.Once
}

// TableSetup handles DynamoDB table creation for the required tables
type TableSetup struct {
	Config   *Config
	Logger   logger.Logger
	DBClient DBClient
}

// WorkerConfig holds configuration for the sweep worker
type WorkerConfig struct {
	// Cron schedule
	CronSchedule string `json:"cron_schedule"`

	// Lock settings
	LockTimeout       time.Duration `json:"lock_timeout"`
	LockRetryInterval time.Duration `json:"lock_retry_interval"`

	// Retry settings
	MaxRetries int           `json:"max_retries"`
	RetryDelay time.Duration `json:"retry_delay"`

	// Environment settings
	Environment    string   `json:"environment"`
	RequiredTables []string `json:"required_tables"`

	// Paths
	LockFilePath   string `json:"lock_file_path"`
	StatusFilePath string `json:"status_file_path"`

	// Feature flags
	DryRun       bool `json:"dry_run"`
	SweepOnStart bool `json:"sweep_on_start"`
}

// LockInfo represents held lock information
type LockInfo struct {
	ID          string    `json:"id"`
	Owner       string    `json:"owner"`
	AcquiredAt  time.Time `json:"acquired_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Environment string    `json:"environment"`
}

// WorkerStatus represents the current status of the sweep worker
type WorkerStatus string

const (
	StatusIdle           WorkerStatus = "idle"
	StatusInitializing   WorkerStatus = "initializing"
	StatusCreatingTables WorkerStatus = "creating_tables"
	StatusSweeping       WorkerStatus = "sweeping"
	StatusCompleted      WorkerStatus = "completed"
	StatusFailed         WorkerStatus = "failed"
	StatusRetrying       WorkerStatus = "retrying"
)

// ExecutionResult holds the result of one sweep execution
type ExecutionResult struct {
	Success   bool          `json:"success"`
	Status    WorkerStatus  `json:"status"`
	StartTime time.Time     `json:"start_time"`
	EndTime   *time.Time    `json:"end_time,omitempty"`
	Duration  time.Duration `json:"duration"`

	// Sweep outcome
	EquipmentSwept       int `json:"equipment_swept"`
	RecordsMarkedOverdue int `json:"records_marked_overdue"`
	EventsMarkedOverdue  int `json:"events_marked_overdue"`

	// Resource tracking
	TablesEnsured []TableStatus `json:"tables_ensured,omitempty"`

	// Error handling
	ErrorMessage string `json:"error_message,omitempty"`
	RetryCount   int    `json:"retry_count"`

	// Context
	Environment string                 `json:"environment"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// TableStatus represents table readiness information
type TableStatus struct {
	Name      string    `json:"name"`
	Status    string    `json:"status"` // CREATING, ACTIVE, FAILED
	CreatedAt time.Time `json:"created_at"`
}
