package service

import (
	"errors"
	"fmt"
	"mahad_backend/internal/model"
	"mahad_backend/internal/repository"
	"mahad_backend/internal/util"
	"mahad_backend/pkg/monitoring"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GradeService is the tahfidz grade ledger: one record per
// (resident, target) pair, every access threaded through the caller's scope.
type GradeService struct {
	GradeRepo    *repository.GradeRepository
	ResidentRepo *repository.ResidentRepository
	TargetRepo   *repository.TargetRepository
}

func NewGradeService(
	gradeRepo *repository.GradeRepository,
	residentRepo *repository.ResidentRepository,
	targetRepo *repository.TargetRepository,
) *GradeService {
	return &GradeService{
		GradeRepo:    gradeRepo,
		ResidentRepo: residentRepo,
		TargetRepo:   targetRepo,
	}
}

// checkResident verifies existence first, then containment. The 404/403
// split is deliberate: staff may already enumerate residents in their own
// scope, so ErrOutOfScope leaks nothing beyond "not yours".
func (s *GradeService) checkResident(residentID uint, scope model.ScopeSet) (*model.Resident, error) {
	resident, err := s.ResidentRepo.FindByID(residentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUnknownResident
		}
		return nil, err
	}
	if !scope.Contains(resident.StudyGroupID, resident.FloorID) {
		return nil, util.ErrOutOfScope
	}
	return resident, nil
}

// Upsert writes the grade for a (resident, target) pair. The write itself is
// a single conditional insert-or-update, so two staff members grading the
// same pair concurrently converge on the last committed payload with exactly
// one row remaining.
func (s *GradeService) Upsert(residentID, targetID uint, status model.GradeStatus, letter *model.LetterGrade, gradedBy uint, scope model.ScopeSet) (*model.TahfidzGrade, error) {
	if _, err := s.checkResident(residentID, scope); err != nil {
		return nil, err
	}

	if _, err := s.TargetRepo.FindByID(targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUnknownTarget
		}
		return nil, err
	}

	grade := &model.TahfidzGrade{
		ResidentID:  residentID,
		TargetID:    targetID,
		Status:      status,
		LetterGrade: letter,
		GradedBy:    gradedBy,
	}
	if err := s.GradeRepo.Upsert(grade); err != nil {
		return nil, err
	}
	monitoring.GradeUpserts.WithLabelValues(string(status)).Inc()

	// Re-read the pair so the caller sees the stored row, id included.
	return s.GradeRepo.FindPair(residentID, targetID)
}

// GradesForResident returns the resident's grade sheet ordered by target id.
func (s *GradeService) GradesForResident(residentID uint, scope model.ScopeSet) ([]model.TahfidzGrade, error) {
	if _, err := s.checkResident(residentID, scope); err != nil {
		return nil, err
	}
	return s.GradeRepo.FindByResident(residentID)
}

// GradesInScope is the bulk read backing aggregation views: one scoped
// query, never a per-resident loop.
func (s *GradeService) GradesInScope(scope model.ScopeSet) ([]model.TahfidzGrade, error) {
	return s.GradeRepo.FindInScope(scope)
}

// GradeImportRow is one pre-validated tuple from the spreadsheet-import
// collaborator. Parsing happens upstream; this service only grades.
type GradeImportRow struct {
	ResidentID  uint               `json:"residentId" binding:"required"`
	TargetID    uint               `json:"targetId" binding:"required"`
	Status      model.GradeStatus  `json:"status" binding:"required"`
	LetterGrade *model.LetterGrade `json:"letterGrade"`
}

type GradeImportResult struct {
	BatchID  string   `json:"batchId"`
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// Import drives each row through the same scope-checked upsert as a manual
// grading action. Row failures are collected, not fatal: the batch reports
// what landed.
func (s *GradeService) Import(rows []GradeImportRow, gradedBy uint, scope model.ScopeSet) (*GradeImportResult, error) {
	result := &GradeImportResult{BatchID: uuid.New().String()}

	for i, row := range rows {
		if !row.Status.Valid() {
			result.Failed++
			result.Errors = append(result.Errors, rowError(i, "invalid status"))
			continue
		}
		if row.LetterGrade != nil && !row.LetterGrade.Valid() {
			result.Failed++
			result.Errors = append(result.Errors, rowError(i, "invalid letter grade"))
			continue
		}
		if _, err := s.Upsert(row.ResidentID, row.TargetID, row.Status, row.LetterGrade, gradedBy, scope); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, rowError(i, err.Error()))
			continue
		}
		result.Imported++
	}

	return result, nil
}

func rowError(index int, msg string) string {
	return fmt.Sprintf("row %d: %s", index+1, msg)
}
