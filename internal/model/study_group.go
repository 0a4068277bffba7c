package model

// StudyGroup is an usroh, the smallest resident grouping unit and the scoping
// unit for an asisten musyrif.
type StudyGroup struct {
	BaseModel
	Name      string     `gorm:"size:100;not null" json:"name"`
	FloorID   uint       `gorm:"index;not null" json:"floorId"`
	Residents []Resident `gorm:"foreignKey:StudyGroupID" json:"residents,omitempty"`
}

func (StudyGroup) TableName() string {
	return "study_groups"
}
