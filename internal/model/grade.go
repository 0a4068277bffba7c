package model

import "time"

// GradeStatus is the closed completion status of a tahfidz grade.
type GradeStatus string

const (
	StatusComplete      GradeStatus = "complete"
	StatusIncomplete    GradeStatus = "incomplete"
	StatusNeedsRevision GradeStatus = "needs_revision"
)

// Valid reports whether s is one of the known statuses.
func (s GradeStatus) Valid() bool {
	switch s {
	case StatusComplete, StatusIncomplete, StatusNeedsRevision:
		return true
	}
	return false
}

// LetterGrade is the ordered A..E scale. Nullable on a grade record.
type LetterGrade string

const (
	GradeA LetterGrade = "A"
	GradeB LetterGrade = "B"
	GradeC LetterGrade = "C"
	GradeD LetterGrade = "D"
	GradeE LetterGrade = "E"
)

func (g LetterGrade) Valid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD, GradeE:
		return true
	}
	return false
}

// TahfidzGrade is a nilai tahfidz: at most one record exists per
// (resident, target) pair, enforced by the composite unique index and the
// ledger's ON CONFLICT upsert rather than a read-then-write check.
type TahfidzGrade struct {
	ID          uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	ResidentID  uint         `gorm:"not null;uniqueIndex:idx_resident_target" json:"residentId"`
	TargetID    uint         `gorm:"not null;uniqueIndex:idx_resident_target" json:"targetId"`
	Status      GradeStatus  `gorm:"size:20;not null" json:"status"`
	LetterGrade *LetterGrade `gorm:"size:2" json:"letterGrade,omitempty"`
	GradedBy    uint         `gorm:"index" json:"gradedBy"` // user id of the musyrif/asisten who last wrote the record
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

func (TahfidzGrade) TableName() string {
	return "tahfidz_grades"
}
