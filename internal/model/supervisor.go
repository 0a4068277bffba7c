package model

// Supervisor is a musyrif. FloorID stays nil until an administrator links the
// staff member to a floor; until then the scope resolver reports no scope.
type Supervisor struct {
	BaseModel
	UserID  uint  `gorm:"uniqueIndex;not null" json:"userId"`
	FloorID *uint `gorm:"index" json:"floorId,omitempty"`
}

func (Supervisor) TableName() string {
	return "supervisors"
}
