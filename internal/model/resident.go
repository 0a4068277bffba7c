package model

// Resident is a mahasantri housed in an usroh. FloorID is denormalized from
// the study group for fast scope filtering and must always agree with the
// group's floor; every create/move goes through the hierarchy service which
// writes both references in one update.
type Resident struct {
	BaseModel
	Name             string `gorm:"size:100;not null" json:"name"`
	EnrollmentNumber string `gorm:"size:30;unique;not null" json:"enrollmentNumber"`
	StudyGroupID     uint   `gorm:"index;not null" json:"studyGroupId"`
	FloorID          uint   `gorm:"index;not null" json:"floorId"`
	Photo            string `gorm:"size:255" json:"photo"`
	UserID           *uint  `gorm:"index" json:"userId,omitempty"` // optional mahasantri login
}

func (Resident) TableName() string {
	return "residents"
}
