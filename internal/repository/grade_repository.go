package repository

import (
	"mahad_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GradeRepository is the storage side of the grade ledger. Uniqueness of the
// (resident, target) pair is guaranteed by the composite index plus a
// conditional upsert; there is no read-then-write path anywhere.
type GradeRepository struct {
	DB *gorm.DB
}

func NewGradeRepository(db *gorm.DB) *GradeRepository {
	return &GradeRepository{DB: db}
}

// Upsert inserts the grade or, on conflict with an existing
// (resident_id, target_id) row, overwrites its mutable fields. A single
// conditional write, so concurrent graders converge to the last committed
// payload instead of racing a find-then-create sequence.
func (r *GradeRepository) Upsert(grade *model.TahfidzGrade) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "resident_id"}, {Name: "target_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "letter_grade", "graded_by", "updated_at"}),
	}).Create(grade).Error
}

// FindPair returns the single row for a (resident, target) pair.
func (r *GradeRepository) FindPair(residentID, targetID uint) (*model.TahfidzGrade, error) {
	var grade model.TahfidzGrade
	err := r.DB.Where("resident_id = ? AND target_id = ?", residentID, targetID).First(&grade).Error
	return &grade, err
}

// FindByResident returns all grades of one resident, ordered by target id
// for deterministic output.
func (r *GradeRepository) FindByResident(residentID uint) ([]model.TahfidzGrade, error) {
	var grades []model.TahfidzGrade
	err := r.DB.Where("resident_id = ?", residentID).Order("target_id").Find(&grades).Error
	return grades, err
}

// scopedGrades joins the residents table so a scope filter applies to grade
// rows in a single query, without iterating residents.
func scopedGrades(db *gorm.DB, scope model.ScopeSet) *gorm.DB {
	q := db.Joins("JOIN residents ON residents.id = tahfidz_grades.resident_id AND residents.deleted_at IS NULL")
	switch scope.Role {
	case model.RoleSupervisor:
		return q.Where("residents.floor_id = ?", scope.FloorID)
	case model.RoleAssistant:
		return q.Where("residents.study_group_id = ?", scope.StudyGroupID)
	}
	return q
}

// FindInScope is the bulk read used by the aggregator.
func (r *GradeRepository) FindInScope(scope model.ScopeSet) ([]model.TahfidzGrade, error) {
	var grades []model.TahfidzGrade
	err := scopedGrades(r.DB.Model(&model.TahfidzGrade{}), scope).
		Order("tahfidz_grades.resident_id, tahfidz_grades.target_id").
		Find(&grades).Error
	return grades, err
}

// CompletedCountByTarget counts distinct in-scope residents holding a
// complete grade, per target. Distinct residents, not rows: the aggregator
// dedupes defensively rather than trusting the uniqueness constraint.
func (r *GradeRepository) CompletedCountByTarget(scope model.ScopeSet) (map[uint]int, error) {
	type row struct {
		TargetID uint
		Count    int
	}
	var rows []row
	err := scopedGrades(r.DB.Model(&model.TahfidzGrade{}), scope).
		Select("tahfidz_grades.target_id AS target_id, COUNT(DISTINCT tahfidz_grades.resident_id) AS count").
		Where("tahfidz_grades.status = ?", model.StatusComplete).
		Group("tahfidz_grades.target_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.TargetID] = r.Count
	}
	return counts, nil
}

// CompletedCountByResident counts distinct completed targets per in-scope
// resident, for the leaderboard.
func (r *GradeRepository) CompletedCountByResident(scope model.ScopeSet) (map[uint]int, error) {
	type row struct {
		ResidentID uint
		Count      int
	}
	var rows []row
	err := scopedGrades(r.DB.Model(&model.TahfidzGrade{}), scope).
		Select("tahfidz_grades.resident_id AS resident_id, COUNT(DISTINCT tahfidz_grades.target_id) AS count").
		Where("tahfidz_grades.status = ?", model.StatusComplete).
		Group("tahfidz_grades.resident_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.ResidentID] = r.Count
	}
	return counts, nil
}
