package model

import "time"

// QuizAssignment is a learning-material quiz administered to residents.
type QuizAssignment struct {
	BaseModel
	Title     string         `gorm:"size:150;not null" json:"title"`
	Material  string         `gorm:"type:text" json:"material"`
	CreatedBy uint           `gorm:"index" json:"createdBy"`
	Published bool           `gorm:"default:false" json:"published"`
	Questions []QuizQuestion `gorm:"foreignKey:AssignmentID" json:"questions,omitempty"`
}

func (QuizAssignment) TableName() string {
	return "quiz_assignments"
}

type QuizQuestion struct {
	BaseModel
	AssignmentID uint   `gorm:"index;not null" json:"assignmentId"`
	Prompt       string `gorm:"type:text;not null" json:"prompt"`
	OptionA      string `gorm:"size:255" json:"optionA"`
	OptionB      string `gorm:"size:255" json:"optionB"`
	OptionC      string `gorm:"size:255" json:"optionC"`
	OptionD      string `gorm:"size:255" json:"optionD"`
	CorrectKey   string `gorm:"size:1;not null" json:"-"` // A..D, hidden from residents
	Order        int    `gorm:"not null;default:0" json:"order"`
}

func (QuizQuestion) TableName() string {
	return "quiz_questions"
}

// QuizAnswer records one resident's answer to one question. Correctness is
// marked server-side at submission; the leaderboard ranker reads it as-is.
type QuizAnswer struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ResidentID   uint      `gorm:"not null;uniqueIndex:idx_resident_question" json:"residentId"`
	AssignmentID uint      `gorm:"index;not null" json:"assignmentId"`
	QuestionID   uint      `gorm:"not null;uniqueIndex:idx_resident_question" json:"questionId"`
	ChosenKey    string    `gorm:"size:1;not null" json:"chosenKey"`
	IsCorrect    bool      `gorm:"not null" json:"isCorrect"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (QuizAnswer) TableName() string {
	return "quiz_answers"
}
