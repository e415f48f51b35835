package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"srkr.edu.in/campus/attendance/model"
	"srkr.edu.in/campus/core/models"
	v1 "srkr.edu.in/campus/ezygo/v1"
	"srkr.edu.in/campus/utils"
)

// ErrSyncInProgress means another reconciliation run currently holds
// the advisory lock for the same date.
var ErrSyncInProgress = errors.New("attendance sync already running for this date")

type SyncOptions struct {
	// Date of the run; zero value means today (campus time).
	Date time.Time

	// SourceFile, when set, replays a captured payload from disk
	// instead of hitting the live endpoint.
	SourceFile string

	// Cutoff is the morning/afternoon boundary; zero means 13:00.
	Cutoff time.Duration
}

type SyncResult struct {
	LogID              string           `json:"log_id"`
	Status             model.SyncStatus `json:"status"`
	RecordsUpdated     int              `json:"records_updated"`
	RecordsInserted    int              `json:"records_inserted"`
	DuplicatesRepaired int              `json:"duplicates_repaired"`
	UnmappedStudents   int              `json:"unmapped_students"`
	Details            string           `json:"details"`
}

// SyncExternalAttendance runs the daily reconciliation for opts.Date:
// fetch, identity mapping, schedule resolution, duplicate repair, diff,
// batched persistence, post-write validation, audit log. Re-invoking
// for the same date is safe; with unchanged external data the second
// run performs zero writes.
//
// The caller must hand in a db bound to a single connection (see
// core.DatabaseManager.GetDB): the per-date lock is session-scoped.
func SyncExternalAttendance(db *gorm.DB, client *v1.EzygoClient, opts SyncOptions) (*SyncResult, error) {
	if opts.Date.IsZero() {
		opts.Date = utils.Today()
	}
	if opts.Cutoff <= 0 {
		opts.Cutoff = DefaultCutoff
	}
	dateStr := opts.Date.Format("2006-01-02")
	opts.Date = utils.MustParseDate(dateStr)

	release, err := acquireSyncLock(db, dateStr)
	if err != nil {
		return nil, err
	}
	defer release()

	endpoint := opts.SourceFile
	if endpoint == "" && client != nil {
		endpoint = client.Transport.BaseURL
	}

	// Committed before any other work so a crash mid-run leaves an
	// In Progress row as forensic evidence.
	logRow := &model.AttendanceSyncLog{
		ID:         uuid.NewString(),
		SyncDate:   opts.Date,
		ExecutedAt: utils.ISTNow(),
		Status:     model.SyncInProgress,
		Endpoint:   endpoint,
	}
	if err := db.Create(logRow).Error; err != nil {
		return nil, fmt.Errorf("failed to open sync log: %w", err)
	}

	res, err := runPipeline(db, client, opts, dateStr)
	if err != nil {
		closeLog(db, logRow, model.SyncFailed, &SyncResult{Details: err.Error()})
		return nil, err
	}

	res.LogID = logRow.ID
	closeLog(db, logRow, res.Status, res)
	return res, nil
}

func runPipeline(db *gorm.DB, client *v1.EzygoClient, opts SyncOptions, dateStr string) (*SyncResult, error) {
	res := &SyncResult{Status: model.SyncSuccess}

	payload, err := fetchPayload(client, opts)
	if err != nil {
		return nil, err
	}
	if payload == nil || len(payload.Attendance) == 0 {
		res.Details = "No attendance data returned from external system."
		return res, nil
	}

	students, unmapped, err := MapStudents(db, payload.Attendance)
	if err != nil {
		return nil, err
	}
	res.UnmappedStudents = len(unmapped)

	var notes []string
	if len(unmapped) > 0 {
		notes = append(notes, fmt.Sprintf("Unmapped external ids: %s", strings.Join(unmapped, ", ")))
	}
	if len(students) == 0 {
		notes = append(notes, "No external id mapped to a student; nothing to reconcile.")
		res.Details = strings.Join(notes, "\n")
		return res, nil
	}

	studentIDs := utils.Map(utils.Values(students), func(s models.Student) string { return s.ID })

	schedules, warnings, err := ResolveSchedules(db, opts.Date, studentIDs, opts.Cutoff)
	if err != nil {
		return nil, err
	}
	notes = append(notes, warnings...)

	desired := BuildDesiredState(payload.Attendance, students, schedules)

	// Repair, diff and persist share one transaction: the diff sees
	// the repaired baseline, and a failure anywhere rolls the whole
	// unit back.
	err = db.Transaction(func(tx *gorm.DB) error {
		records, err := LoadActiveRecords(tx, dateStr, studentIDs)
		if err != nil {
			return err
		}

		existing, duplicateIDs := SplitDuplicates(records)
		if err := DeactivateDuplicates(tx, duplicateIDs); err != nil {
			return err
		}
		res.DuplicatesRepaired = len(duplicateIDs)

		diff := Diff(opts.Date, desired, existing)
		if err := Persist(tx, diff); err != nil {
			return err
		}
		res.RecordsUpdated = diff.UpdateCount()
		res.RecordsInserted = len(diff.Inserts)
		return nil
	})
	if err != nil {
		return nil, err
	}

	pairs, err := ValidateUniqueActive(db, dateStr, studentIDs)
	if err != nil {
		return nil, err
	}
	if len(pairs) > 0 {
		res.Status = model.SyncWarning
		notes = append(notes, fmt.Sprintf("Post-write validation found %d duplicated pairs:", len(pairs)))
		for _, p := range pairs {
			notes = append(notes, p.String())
		}
	}

	if len(notes) == 0 {
		notes = append(notes, fmt.Sprintf("Processed %d students: %d updated, %d inserted, %d duplicates repaired.",
			len(students), res.RecordsUpdated, res.RecordsInserted, res.DuplicatesRepaired))
	}
	res.Details = strings.Join(notes, "\n")
	return res, nil
}

func fetchPayload(client *v1.EzygoClient, opts SyncOptions) (*v1.DailyAttendanceDTO, error) {
	if opts.SourceFile != "" {
		return v1.ReadDailyFile(opts.SourceFile)
	}
	if client == nil {
		return nil, errors.New("no external attendance client configured")
	}
	return client.Attendance.Daily(opts.Date.Format("2006-01-02"))
}

// acquireSyncLock serialises runs per date with a MySQL advisory lock.
// Timeout 0: a concurrent run for the same date fails fast instead of
// queuing behind the active one.
func acquireSyncLock(db *gorm.DB, dateStr string) (func(), error) {
	key := "attendance_sync:" + dateStr

	var got int
	if err := db.Raw("SELECT GET_LOCK(?, 0)", key).Scan(&got).Error; err != nil {
		return nil, fmt.Errorf("failed to acquire sync lock: %w", err)
	}
	if got != 1 {
		return nil, ErrSyncInProgress
	}

	return func() {
		if err := db.Exec("SELECT RELEASE_LOCK(?)", key).Error; err != nil {
			fmt.Printf("[WARN] failed to release sync lock %s: %v\n", key, err)
		}
	}, nil
}

func closeLog(db *gorm.DB, logRow *model.AttendanceSyncLog, status model.SyncStatus, res *SyncResult) {
	updates := map[string]any{
		"status":              status,
		"records_updated":     res.RecordsUpdated,
		"records_inserted":    res.RecordsInserted,
		"duplicates_repaired": res.DuplicatesRepaired,
		"unmapped_students":   res.UnmappedStudents,
		"details":             res.Details,
	}
	if err := db.Model(logRow).Updates(updates).Error; err != nil {
		// The run outcome stands; a log-close failure is only reported.
		fmt.Printf("[WARN] failed to close sync log %s: %v\n", logRow.ID, err)
	}
}
