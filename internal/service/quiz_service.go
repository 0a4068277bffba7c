package service

import (
	"errors"
	"mahad_backend/internal/model"
	"mahad_backend/internal/repository"
	"mahad_backend/internal/util"

	"gorm.io/gorm"
)

// QuizService administers learning-material quizzes and records resident
// answers with server-side correctness marking.
type QuizService struct {
	QuizRepo     *repository.QuizRepository
	ResidentRepo *repository.ResidentRepository
}

func NewQuizService(quizRepo *repository.QuizRepository, residentRepo *repository.ResidentRepository) *QuizService {
	return &QuizService{QuizRepo: quizRepo, ResidentRepo: residentRepo}
}

type QuizQuestionInput struct {
	Prompt     string `json:"prompt" binding:"required"`
	OptionA    string `json:"optionA" binding:"required"`
	OptionB    string `json:"optionB" binding:"required"`
	OptionC    string `json:"optionC"`
	OptionD    string `json:"optionD"`
	CorrectKey string `json:"correctKey" binding:"required,oneof=A B C D"`
}

func (s *QuizService) CreateAssignment(title, material string, createdBy uint, questions []QuizQuestionInput) (*model.QuizAssignment, error) {
	assignment := &model.QuizAssignment{
		Title:     title,
		Material:  material,
		CreatedBy: createdBy,
	}
	for i, q := range questions {
		assignment.Questions = append(assignment.Questions, model.QuizQuestion{
			Prompt:     q.Prompt,
			OptionA:    q.OptionA,
			OptionB:    q.OptionB,
			OptionC:    q.OptionC,
			OptionD:    q.OptionD,
			CorrectKey: q.CorrectKey,
			Order:      i + 1,
		})
	}

	if err := s.QuizRepo.CreateAssignment(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *QuizService) Publish(assignmentID uint) error {
	assignment, err := s.QuizRepo.FindAssignmentByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuizNotFound
		}
		return err
	}
	assignment.Published = true
	return s.QuizRepo.UpdateAssignment(assignment)
}

func (s *QuizService) ListPublished() ([]model.QuizAssignment, error) {
	return s.QuizRepo.FindPublishedAssignments()
}

func (s *QuizService) GetAssignment(id uint) (*model.QuizAssignment, error) {
	assignment, err := s.QuizRepo.FindAssignmentByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	return assignment, nil
}

type QuizSubmission struct {
	Answers map[uint]string `json:"answers" binding:"required"` // question id -> chosen key
}

type QuizSubmissionResult struct {
	AssignmentID uint `json:"assignmentId"`
	Answered     int  `json:"answered"`
	Correct      int  `json:"correct"`
}

// SubmitAnswers marks each chosen key against the stored correct key and
// upserts one answer row per question. A resubmission overwrites the earlier
// choice for the same question.
func (s *QuizService) SubmitAnswers(residentID, assignmentID uint, submission QuizSubmission) (*QuizSubmissionResult, error) {
	assignment, err := s.QuizRepo.FindAssignmentByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuizNotFound
		}
		return nil, err
	}
	if !assignment.Published {
		return nil, util.ErrQuizUnpublished
	}

	if _, err := s.ResidentRepo.FindByID(residentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUnknownResident
		}
		return nil, err
	}

	result := &QuizSubmissionResult{AssignmentID: assignmentID}
	for _, q := range assignment.Questions {
		chosen, ok := submission.Answers[q.ID]
		if !ok {
			continue
		}
		answer := &model.QuizAnswer{
			ResidentID:   residentID,
			AssignmentID: assignmentID,
			QuestionID:   q.ID,
			ChosenKey:    chosen,
			IsCorrect:    chosen == q.CorrectKey,
		}
		if err := s.QuizRepo.UpsertAnswer(answer); err != nil {
			return nil, err
		}
		result.Answered++
		if answer.IsCorrect {
			result.Correct++
		}
	}

	return result, nil
}
