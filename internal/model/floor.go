package model

// Floor is a lantai inside a building. At most one musyrif is assigned per
// floor; the constraint is enforced in the service layer, not the schema.
type Floor struct {
	BaseModel
	Name        string       `gorm:"size:100;not null" json:"name"`
	BuildingID  uint         `gorm:"index;not null" json:"buildingId"`
	StudyGroups []StudyGroup `gorm:"foreignKey:FloorID" json:"studyGroups,omitempty"`
}

func (Floor) TableName() string {
	return "floors"
}
