package service

import (
	"context"
	"testing"

	"mahad_backend/internal/model"
	"mahad_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLeaderboardService(db *gorm.DB) *LeaderboardService {
	return NewLeaderboardService(
		repository.NewGradeRepository(db),
		repository.NewQuizRepository(db),
		repository.NewResidentRepository(db),
		nil, // no cache in tests, every call recomputes
	)
}

func seedCompleted(t *testing.T, db *gorm.DB, resident model.Resident, targets ...model.MemorizationTarget) {
	t.Helper()
	grades := newGradeService(db)
	for _, target := range targets {
		_, err := grades.Upsert(resident.ID, target.ID, model.StatusComplete, nil, 1, model.AdminScope())
		require.NoError(t, err)
	}
}

func seedCorrectAnswers(t *testing.T, db *gorm.DB, resident model.Resident, n int, questionOffset uint) {
	t.Helper()
	for i := 0; i < n; i++ {
		ans := model.QuizAnswer{
			ResidentID:   resident.ID,
			AssignmentID: 1,
			QuestionID:   questionOffset + uint(i),
			ChosenKey:    "A",
			IsCorrect:    true,
		}
		require.NoError(t, db.Create(&ans).Error)
	}
}

func TestLeaderboardOrderAndRanks(t *testing.T) {
	db := newTestDB(t)
	f := seedHierarchy(t, db)
	t1 := seedTarget(t, db, "Juz 30", "QS An-Naba - QS An-Nas")
	t2 := seedTarget(t, db, "Juz 29", "QS Al-Mulk - QS Al-Mursalat")

	ahmad := seedResident(t, db, "Ahmad", "MHS001", f.group1)
	budi := seedResident(t, db, "Budi", "MHS002", f.group1)
	citra := seedResident(t, db, "Citra", "MHS003", f.group1)
	dedi := seedResident(t, db, "Dedi", "MHS004", f.group1)

	seedCompleted(t, db, ahmad, t1, t2)
	seedCorrectAnswers(t, db, ahmad, 3, 100)

	seedCompleted(t, db, budi, t1, t2)
	seedCorrectAnswers(t, db, budi, 3, 200)

	seedCompleted(t, db, citra, t1)
	seedCorrectAnswers(t, db, citra, 5, 300)

	// dedi has nothing graded and no answers.

	entries, err := newLeaderboardService(db).Leaderboard(context.Background(), model.GroupScope(f.group1.ID))
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// Ahmad and Budi tie on both metrics; the lower resident id lists first
	// and they share rank 1. Citra's five correct answers cannot outrank a
	// completed target, and the next distinct score resumes at position 3.
	assert.Equal(t, []uint{ahmad.ID, budi.ID, citra.ID, dedi.ID},
		[]uint{entries[0].ResidentID, entries[1].ResidentID, entries[2].ResidentID, entries[3].ResidentID})
	assert.Equal(t, []int{1, 1, 3, 4},
		[]int{entries[0].Rank, entries[1].Rank, entries[2].Rank, entries[3].Rank})

	assert.Equal(t, 2, entries[0].CompletedTargets)
	assert.Equal(t, 3, entries[0].CorrectAnswers)
	assert.Equal(t, 0, entries[3].CompletedTargets)
}

func TestLeaderboardDeterministic(t *testing.T) {
	db := newTestDB(t)
	f := seedHierarchy(t, db)
	t1 := seedTarget(t, db, "Juz 30", "QS An-Naba - QS An-Nas")

	for i, name := range []string{"Ahmad", "Budi", "Citra", "Dedi", "Eka"} {
		res := seedResident(t, db, name, "MHS10"+string(rune('0'+i)), f.group1)
		if i%2 == 0 {
			seedCompleted(t, db, res, t1)
		}
	}

	svc := newLeaderboardService(db)
	first, err := svc.Leaderboard(context.Background(), model.GroupScope(f.group1.ID))
	require.NoError(t, err)
	second, err := svc.Leaderboard(context.Background(), model.GroupScope(f.group1.ID))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLeaderboardScoped(t *testing.T) {
	db := newTestDB(t)
	f := seedHierarchy(t, db)
	t1 := seedTarget(t, db, "Juz 30", "QS An-Naba - QS An-Nas")

	inGroup := seedResident(t, db, "Ahmad", "MHS001", f.group1)
	onFloor := seedResident(t, db, "Budi", "MHS002", f.group2)
	elsewhere := seedResident(t, db, "Citra", "MHS003", f.group3)
	seedCompleted(t, db, elsewhere, t1)

	svc := newLeaderboardService(db)

	groupEntries, err := svc.Leaderboard(context.Background(), model.GroupScope(f.group1.ID))
	require.NoError(t, err)
	require.Len(t, groupEntries, 1)
	assert.Equal(t, inGroup.ID, groupEntries[0].ResidentID)

	floorEntries, err := svc.Leaderboard(context.Background(), model.FloorScope(f.floor1.ID))
	require.NoError(t, err)
	require.Len(t, floorEntries, 2)
	assert.Equal(t, []uint{inGroup.ID, onFloor.ID},
		[]uint{floorEntries[0].ResidentID, floorEntries[1].ResidentID})

	globalEntries, err := svc.Leaderboard(context.Background(), model.AdminScope())
	require.NoError(t, err)
	require.Len(t, globalEntries, 3)
	assert.Equal(t, elsewhere.ID, globalEntries[0].ResidentID)
	assert.Equal(t, 1, globalEntries[0].Rank)
}

func TestLeaderboardIncompleteDoesNotCount(t *testing.T) {
	db := newTestDB(t)
	f := seedHierarchy(t, db)
	t1 := seedTarget(t, db, "Juz 30", "QS An-Naba - QS An-Nas")

	res := seedResident(t, db, "Ahmad", "MHS001", f.group1)
	grades := newGradeService(db)
	_, err := grades.Upsert(res.ID, t1.ID, model.StatusNeedsRevision, nil, 1, model.AdminScope())
	require.NoError(t, err)

	entries, err := newLeaderboardService(db).Leaderboard(context.Background(), model.GroupScope(f.group1.ID))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].CompletedTargets)
}
