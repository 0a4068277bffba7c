package service

import (
	"testing"

	"mahad_backend/internal/model"
	"mahad_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProgressService(db *gorm.DB) *ProgressService {
	return NewProgressService(
		repository.NewGradeRepository(db),
		repository.NewResidentRepository(db),
		repository.NewTargetRepository(db),
	)
}

func TestTargetProgressCountsUngraded(t *testing.T) {
	db := newTestDB(t)
	f := seedHierarchy(t, db)
	target := seedTarget(t, db, "Juz 30", "QS An-Naba - QS An-Nas")

	// Four residents in one usroh: two complete, one graded incomplete, one
	// never graded at all.
	r1 := seedResident(t, db, "Ahmad", "MHS001", f.group1)
	r2 := seedResident(t, db, "Budi", "MHS002", f.group1)
	r3 := seedResident(t, db, "Citra", "MHS003", f.group1)
	seedResident(t, db, "Dedi", "MHS004", f.group1)

	grades := newGradeService(db)
	scope := model.GroupScope(f.group1.ID)
	for _, id := range []uint{r1.ID, r2.ID} {
		_, err := grades.Upsert(id, target.ID, model.StatusComplete, nil, 1, scope)
		require.NoError(t, err)
	}
	_, err := grades.Upsert(r3.ID, target.ID, model.StatusIncomplete, nil, 1, scope)
	require.NoError(t, err)

	rows, err := newProgressService(db).TargetProgress(scope)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, target.ID, row.TargetID)
	assert.Equal(t, 4, row.TotalResidents)
	assert.Equal(t, 2, row.CompletedCount)
	assert.Equal(t, 2, row.IncompleteCount)
	assert.Equal(t, row.TotalResidents, row.CompletedCount+row.IncompleteCount)
}

func TestTargetProgressUsesScopeLocalTotals(t *testing.T) {
	db := newTestDB(t)
	f := seedHierarchy(t, db)
	target := seedTarget(t, db, "Juz 30", "QS An-Naba - QS An-Nas")

	onFloor := seedResident(t, db, "Eka", "MHS005", f.group1)
	seedResident(t, db, "Fajar", "MHS006", f.group2)
	elsewhere := seedResident(t, db, "Gita", "MHS007", f.group3)

	grades := newGradeService(db)
	_, err := grades.Upsert(onFloor.ID, target.ID, model.StatusComplete, nil, 1, model.AdminScope())
	require.NoError(t, err)
	_, err = grades.Upsert(elsewhere.ID, target.ID, model.StatusComplete, nil, 1, model.AdminScope())
	require.NoError(t, err)

	svc := newProgressService(db)

	// A musyrif on floor 1 sees two residents, one complete. The completion
	// on floor 2 never leaks into their totals.
	floorRows, err := svc.TargetProgress(model.FloorScope(f.floor1.ID))
	require.NoError(t, err)
	require.Len(t, floorRows, 1)
	assert.Equal(t, 2, floorRows[0].TotalResidents)
	assert.Equal(t, 1, floorRows[0].CompletedCount)
	assert.Equal(t, 1, floorRows[0].IncompleteCount)

	// The admin view spans the whole ma'had.
	adminRows, err := svc.TargetProgress(model.AdminScope())
	require.NoError(t, err)
	require.Len(t, adminRows, 1)
	assert.Equal(t, 3, adminRows[0].TotalResidents)
	assert.Equal(t, 2, adminRows[0].CompletedCount)
	assert.Equal(t, 1, adminRows[0].IncompleteCount)
}

func TestTargetProgressOrderedByTarget(t *testing.T) {
	db := newTestDB(t)
	f := seedHierarchy(t, db)
	t1 := seedTarget(t, db, "Juz 30", "QS An-Naba - QS An-Nas")
	t2 := seedTarget(t, db, "Juz 29", "QS Al-Mulk - QS Al-Mursalat")
	seedResident(t, db, "Hadi", "MHS008", f.group1)

	rows, err := newProgressService(db).TargetProgress(model.GroupScope(f.group1.ID))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, t1.ID, rows[0].TargetID)
	assert.Equal(t, t2.ID, rows[1].TargetID)

	// Targets with no grade rows still appear, fully incomplete.
	assert.Equal(t, 0, rows[0].CompletedCount)
	assert.Equal(t, 1, rows[0].IncompleteCount)
}
