package service

import (
	"testing"

	"mahad_backend/internal/model"
	"mahad_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// hierarchyFixture is one building with two floors: group1 and group2 share
// floor1, group3 sits on floor2.
type hierarchyFixture struct {
	building model.Building
	floor1   model.Floor
	floor2   model.Floor
	group1   model.StudyGroup
	group2   model.StudyGroup
	group3   model.StudyGroup
}

func seedHierarchy(t *testing.T, db *gorm.DB) hierarchyFixture {
	t.Helper()

	f := hierarchyFixture{building: model.Building{Name: "Gedung A"}}
	require.NoError(t, db.Create(&f.building).Error)

	f.floor1 = model.Floor{Name: "Lantai 1", BuildingID: f.building.ID}
	f.floor2 = model.Floor{Name: "Lantai 2", BuildingID: f.building.ID}
	require.NoError(t, db.Create(&f.floor1).Error)
	require.NoError(t, db.Create(&f.floor2).Error)

	f.group1 = model.StudyGroup{Name: "Usroh Abu Bakar", FloorID: f.floor1.ID}
	f.group2 = model.StudyGroup{Name: "Usroh Umar", FloorID: f.floor1.ID}
	f.group3 = model.StudyGroup{Name: "Usroh Utsman", FloorID: f.floor2.ID}
	require.NoError(t, db.Create(&f.group1).Error)
	require.NoError(t, db.Create(&f.group2).Error)
	require.NoError(t, db.Create(&f.group3).Error)

	return f
}

func seedResident(t *testing.T, db *gorm.DB, name, enrollmentNumber string, group model.StudyGroup) model.Resident {
	t.Helper()
	res := model.Resident{
		Name:             name,
		EnrollmentNumber: enrollmentNumber,
		StudyGroupID:     group.ID,
		FloorID:          group.FloorID,
	}
	require.NoError(t, db.Create(&res).Error)
	return res
}

func seedTarget(t *testing.T, db *gorm.DB, name, passage string) model.MemorizationTarget {
	t.Helper()
	target := model.MemorizationTarget{Name: name, Passage: passage}
	require.NoError(t, db.Create(&target).Error)
	return target
}
