package repository

import (
	"mahad_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) CreateAssignment(a *model.QuizAssignment) error {
	return r.DB.Create(a).Error
}

func (r *QuizRepository) FindAssignmentByID(id uint) (*model.QuizAssignment, error) {
	var a model.QuizAssignment
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("quiz_questions.`order`")
	}).First(&a, id).Error
	return &a, err
}

func (r *QuizRepository) FindPublishedAssignments() ([]model.QuizAssignment, error) {
	var assignments []model.QuizAssignment
	err := r.DB.Where("published = ?", true).Order("id").Find(&assignments).Error
	return assignments, err
}

func (r *QuizRepository) UpdateAssignment(a *model.QuizAssignment) error {
	return r.DB.Save(a).Error
}

func (r *QuizRepository) DeleteAssignment(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assignment_id = ?", id).Delete(&model.QuizQuestion{}).Error; err != nil {
			return err
		}
		if err := tx.Where("assignment_id = ?", id).Delete(&model.QuizAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QuizAssignment{}, id).Error
	})
}

// UpsertAnswer keeps one answer per (resident, question); a resubmission
// overwrites the earlier choice.
func (r *QuizRepository) UpsertAnswer(ans *model.QuizAnswer) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "resident_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"chosen_key", "is_correct", "updated_at"}),
	}).Create(ans).Error
}

func (r *QuizRepository) FindAnswersByResident(residentID uint) ([]model.QuizAnswer, error) {
	var answers []model.QuizAnswer
	err := r.DB.Where("resident_id = ?", residentID).Order("question_id").Find(&answers).Error
	return answers, err
}

// CorrectCountByResident counts correct answers per in-scope resident, the
// leaderboard's secondary metric.
func (r *QuizRepository) CorrectCountByResident(scope model.ScopeSet) (map[uint]int, error) {
	type row struct {
		ResidentID uint
		Count      int
	}
	q := r.DB.Model(&model.QuizAnswer{}).
		Joins("JOIN residents ON residents.id = quiz_answers.resident_id AND residents.deleted_at IS NULL").
		Select("quiz_answers.resident_id AS resident_id, COUNT(*) AS count").
		Where("quiz_answers.is_correct = ?", true)
	switch scope.Role {
	case model.RoleSupervisor:
		q = q.Where("residents.floor_id = ?", scope.FloorID)
	case model.RoleAssistant:
		q = q.Where("residents.study_group_id = ?", scope.StudyGroupID)
	}

	var rows []row
	if err := q.Group("quiz_answers.resident_id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[uint]int, len(rows))
	for _, r := range rows {
		counts[r.ResidentID] = r.Count
	}
	return counts, nil
}
