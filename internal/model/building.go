package model

// Building is a gedung, the top-level housing unit.
type Building struct {
	BaseModel
	Name   string  `gorm:"size:100;not null" json:"name"`
	Floors []Floor `gorm:"foreignKey:BuildingID" json:"floors,omitempty"`
}

func (Building) TableName() string {
	return "buildings"
}
