package service

import (
	"context"
	"encoding/json"
	"fmt"
	"mahad_backend/internal/model"
	"mahad_backend/internal/repository"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
)

const leaderboardCacheTTL = time.Minute

// RankedResident is one leaderboard entry. Both raw counters are exposed so
// the resident-facing view can filter by either metric; rank is never a
// blended score.
type RankedResident struct {
	Rank             int    `json:"rank"`
	ResidentID       uint   `json:"residentId"`
	Name             string `json:"name"`
	EnrollmentNumber string `json:"enrollmentNumber"`
	CompletedTargets int    `json:"completedTargets"`
	CorrectAnswers   int    `json:"correctAnswers"`
}

// LeaderboardService ranks residents by memorization progress, quiz
// correctness second. Results are cached in redis per scope for a minute.
type LeaderboardService struct {
	GradeRepo    *repository.GradeRepository
	QuizRepo     *repository.QuizRepository
	ResidentRepo *repository.ResidentRepository
	Redis        *redis.Client
}

func NewLeaderboardService(
	gradeRepo *repository.GradeRepository,
	quizRepo *repository.QuizRepository,
	residentRepo *repository.ResidentRepository,
	rdb *redis.Client,
) *LeaderboardService {
	return &LeaderboardService{
		GradeRepo:    gradeRepo,
		QuizRepo:     quizRepo,
		ResidentRepo: residentRepo,
		Redis:        rdb,
	}
}

func cacheKey(scope model.ScopeSet) string {
	switch scope.Role {
	case model.RoleSupervisor:
		return fmt.Sprintf("leaderboard:floor:%d", scope.FloorID)
	case model.RoleAssistant:
		return fmt.Sprintf("leaderboard:usroh:%d", scope.StudyGroupID)
	}
	return "leaderboard:global"
}

// Leaderboard returns all in-scope residents ranked by completed targets
// descending, correct answers descending, then resident id ascending. The
// order is total, so repeated calls over unchanged data are byte-identical.
func (s *LeaderboardService) Leaderboard(ctx context.Context, scope model.ScopeSet) ([]RankedResident, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey(scope)).Result(); err == nil {
			var entries []RankedResident
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries, nil
			}
		}
	}

	entries, err := s.compute(scope)
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(entries); err == nil {
			s.Redis.Set(ctx, cacheKey(scope), payload, leaderboardCacheTTL)
		}
	}

	return entries, nil
}

func (s *LeaderboardService) compute(scope model.ScopeSet) ([]RankedResident, error) {
	residents, err := s.ResidentRepo.FindInScope(scope)
	if err != nil {
		return nil, err
	}

	completed, err := s.GradeRepo.CompletedCountByResident(scope)
	if err != nil {
		return nil, err
	}

	correct, err := s.QuizRepo.CorrectCountByResident(scope)
	if err != nil {
		return nil, err
	}

	entries := make([]RankedResident, 0, len(residents))
	for _, r := range residents {
		entries = append(entries, RankedResident{
			ResidentID:       r.ID,
			Name:             r.Name,
			EnrollmentNumber: r.EnrollmentNumber,
			CompletedTargets: completed[r.ID],
			CorrectAnswers:   correct[r.ID],
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CompletedTargets != entries[j].CompletedTargets {
			return entries[i].CompletedTargets > entries[j].CompletedTargets
		}
		if entries[i].CorrectAnswers != entries[j].CorrectAnswers {
			return entries[i].CorrectAnswers > entries[j].CorrectAnswers
		}
		return entries[i].ResidentID < entries[j].ResidentID
	})

	assignRanks(entries)
	return entries, nil
}

// assignRanks applies competition ranking: tied composite scores share a
// rank and the next distinct score resumes at its position (1,1,3 rather
// than 1,1,2).
func assignRanks(entries []RankedResident) {
	for i := range entries {
		if i > 0 &&
			entries[i].CompletedTargets == entries[i-1].CompletedTargets &&
			entries[i].CorrectAnswers == entries[i-1].CorrectAnswers {
			entries[i].Rank = entries[i-1].Rank
			continue
		}
		entries[i].Rank = i + 1
	}
}

// RefreshGlobalCache recomputes the unrestricted leaderboard and replaces
// its cache entry. Called from the background ticker.
func (s *LeaderboardService) RefreshGlobalCache(ctx context.Context) error {
	entries, err := s.compute(model.AdminScope())
	if err != nil {
		return err
	}
	if s.Redis == nil {
		return nil
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return s.Redis.Set(ctx, cacheKey(model.AdminScope()), payload, leaderboardCacheTTL).Err()
}
