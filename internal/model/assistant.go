package model

// SupervisorAssistant is an asisten musyrif, scoped to a single usroh.
type SupervisorAssistant struct {
	BaseModel
	UserID       uint  `gorm:"uniqueIndex;not null" json:"userId"`
	StudyGroupID *uint `gorm:"index" json:"studyGroupId,omitempty"`
}

func (SupervisorAssistant) TableName() string {
	return "supervisor_assistants"
}
