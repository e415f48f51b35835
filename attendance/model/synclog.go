package model

import "time"

type SyncStatus string

const (
	SyncInProgress SyncStatus = "In Progress"
	SyncSuccess    SyncStatus = "Success"
	SyncWarning    SyncStatus = "Warning"
	SyncFailed     SyncStatus = "Failed"
)

// AttendanceSyncLog is the audit record for one reconciliation run.
// Created as In Progress before any other work, updated exactly once at
// completion. A row stuck in In Progress means the run crashed mid-way.
type AttendanceSyncLog struct {
	ID         string     `gorm:"primaryKey;column:id;size:36"`
	SyncDate   time.Time  `gorm:"column:sync_date;type:date;index"`
	ExecutedAt time.Time  `gorm:"column:executed_at"`
	Status     SyncStatus `gorm:"column:status;size:20"`

	// Endpoint is the source the payload came from: the external base
	// URL, or a local file path on replay runs.
	Endpoint string `gorm:"column:endpoint;size:255"`

	RecordsUpdated     int `gorm:"column:records_updated"`
	RecordsInserted    int `gorm:"column:records_inserted"`
	DuplicatesRepaired int `gorm:"column:duplicates_repaired"`
	UnmappedStudents   int `gorm:"column:unmapped_students"`

	Details string `gorm:"column:details;type:text"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (AttendanceSyncLog) TableName() string {
	return "attendance_sync_logs"
}
