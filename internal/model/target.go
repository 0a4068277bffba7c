package model

// MemorizationTarget is a target hafalan: a named passage range of the
// curriculum. Read-mostly, created by administrators.
type MemorizationTarget struct {
	BaseModel
	Name       string      `gorm:"size:100;not null" json:"name"`
	Passage    string      `gorm:"size:255;not null" json:"passage"` // source passage reference, e.g. "QS Al-Baqarah 1-141"
	SubTargets []SubTarget `gorm:"foreignKey:TargetID" json:"subTargets,omitempty"`
}

func (MemorizationTarget) TableName() string {
	return "memorization_targets"
}

// SubTarget is an ordered named slice of the parent target's passage.
type SubTarget struct {
	BaseModel
	TargetID uint   `gorm:"index;not null" json:"targetId"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Passage  string `gorm:"size:255" json:"passage"`
	Order    int    `gorm:"not null;default:0" json:"order"`
}

func (SubTarget) TableName() string {
	return "sub_targets"
}
