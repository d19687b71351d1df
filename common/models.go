package common

import (
	"time"

	"gorm.io/gorm"
)

// Job statuses
const (
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// Ingest sources
const (
	IngestSourceRemote = "remote"
	IngestSourceUpload = "upload"
)

// IngestJob records one ingestion run (a scheduled refresh of the remote
// sheets or a user CSV upload). Properties themselves are not stored;
// only the outcome of the run is.
type IngestJob struct {
	ID            string     `gorm:"primaryKey;type:text" json:"id"`
	Source        string     `gorm:"not null" json:"source"` // remote, upload
	SourceCount   int        `gorm:"default:0" json:"source_count"`
	PropertyCount int        `gorm:"default:0" json:"property_count"`
	SkippedCount  int        `gorm:"default:0" json:"skipped_count"`
	Status        string     `gorm:"not null" json:"status"` // completed, failed
	Error         string     `gorm:"type:text" json:"error,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// ApiMetric tracks API performance metrics
type ApiMetric struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Endpoint      string    `gorm:"not null" json:"endpoint"`
	Method        string    `gorm:"not null" json:"method"`
	StatusCode    int       `gorm:"not null" json:"status_code"`
	DurationMs    int       `gorm:"not null" json:"duration_ms"`
	RowsProcessed int       `gorm:"default:0" json:"rows_processed"`
	Timestamp     time.Time `gorm:"not null" json:"timestamp"`
}

func (IngestJob) TableName() string { return "ingest_jobs" }
func (ApiMetric) TableName() string { return "api_metrics" }

// AutoMigrateJobs creates the job tracking and metric tables
func AutoMigrateJobs(db *gorm.DB) {
	db.AutoMigrate(&IngestJob{}, &ApiMetric{})
}
