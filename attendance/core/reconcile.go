package core

import (
	"sort"
	"time"

	"srkr.edu.in/campus/attendance/model"
)

// ReconcileResult partitions the desired state into batched write sets.
// Updates groups record ids by the status they must be patched to, so
// the persister needs one UPDATE per target status.
type ReconcileResult struct {
	Updates map[model.Status][]string
	Inserts []model.StudentAttendance
}

func (r ReconcileResult) UpdateCount() int {
	n := 0
	for _, ids := range r.Updates {
		n += len(ids)
	}
	return n
}

// Diff compares desired against de-duplicated existing state. A key in
// both with a different stored status becomes an update; a key absent
// from existing state becomes an insert. Existing rows with no desired
// entry are left untouched: no opinion from the external feed must
// never be read as "mark absent" or "delete", otherwise manual
// corrections would be wiped on every run.
func Diff(date time.Time, desired map[RecordKey]DesiredEntry, existing map[RecordKey]model.StudentAttendance) ReconcileResult {
	res := ReconcileResult{Updates: make(map[model.Status][]string)}

	for key, want := range desired {
		if have, ok := existing[key]; ok {
			if have.Status != want.Status {
				res.Updates[want.Status] = append(res.Updates[want.Status], have.ID)
			}
			continue
		}
		res.Inserts = append(res.Inserts, model.StudentAttendance{
			StudentID:   key.StudentID,
			StudentName: want.StudentName,
			ScheduleID:  key.ScheduleID,
			GroupID:     want.GroupID,
			Date:        date,
			Status:      want.Status,
			Active:      true,
		})
	}

	// Deterministic batches regardless of map iteration order.
	for _, ids := range res.Updates {
		sort.Strings(ids)
	}
	sort.Slice(res.Inserts, func(i, j int) bool {
		if res.Inserts[i].StudentID != res.Inserts[j].StudentID {
			return res.Inserts[i].StudentID < res.Inserts[j].StudentID
		}
		return res.Inserts[i].ScheduleID < res.Inserts[j].ScheduleID
	})

	return res
}
