package service

import (
	"mahad_backend/internal/model"
	"mahad_backend/internal/repository"
)

// TargetProgressRow is one target's completion picture inside a scope.
// Residents with no grade row at all count as incomplete, not absent, so
// completed + incomplete always equals the scope's resident count.
type TargetProgressRow struct {
	TargetID        uint   `json:"targetId"`
	TargetName      string `json:"targetName"`
	Passage         string `json:"passage"`
	TotalResidents  int    `json:"totalResidents"`
	CompletedCount  int    `json:"completedCount"`
	IncompleteCount int    `json:"incompleteCount"`
}

// ProgressService aggregates grade rows into per-target completion counts.
type ProgressService struct {
	GradeRepo    *repository.GradeRepository
	ResidentRepo *repository.ResidentRepository
	TargetRepo   *repository.TargetRepository
}

func NewProgressService(
	gradeRepo *repository.GradeRepository,
	residentRepo *repository.ResidentRepository,
	targetRepo *repository.TargetRepository,
) *ProgressService {
	return &ProgressService{
		GradeRepo:    gradeRepo,
		ResidentRepo: residentRepo,
		TargetRepo:   targetRepo,
	}
}

// TargetProgress returns one row per curriculum target in id order. The
// resident total comes from the same scope filter as the grade counts, so a
// musyrif sees their floor's totals, never the whole ma'had's.
func (s *ProgressService) TargetProgress(scope model.ScopeSet) ([]TargetProgressRow, error) {
	targets, err := s.TargetRepo.FindAll()
	if err != nil {
		return nil, err
	}

	total, err := s.ResidentRepo.CountInScope(scope)
	if err != nil {
		return nil, err
	}

	completed, err := s.GradeRepo.CompletedCountByTarget(scope)
	if err != nil {
		return nil, err
	}

	rows := make([]TargetProgressRow, 0, len(targets))
	for _, t := range targets {
		done := completed[t.ID]
		remaining := int(total) - done
		if remaining < 0 {
			remaining = 0
		}
		rows = append(rows, TargetProgressRow{
			TargetID:        t.ID,
			TargetName:      t.Name,
			Passage:         t.Passage,
			TotalResidents:  int(total),
			CompletedCount:  done,
			IncompleteCount: remaining,
		})
	}

	return rows, nil
}
