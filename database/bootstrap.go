// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"github.com/ikople24/smart-saard/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Parcel{},
		&entities.RefDocument{},
		&entities.RefChunk{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	// Rewrite legacy survey shapes AFTER AutoMigrate so the column exists
	// on a fresh database too.
	if err := migrateSurveyShapes(db); err != nil {
		log.Fatalf("migrate survey shapes: %v", err)
	}

	return db
}

// migrateSurveyShapes lifts historical survey values (bare category string,
// bare list, {types, areas} object) into the canonical allocation JSON.
// Runs once per startup; canonical rows re-encode to themselves so the
// rewrite only touches rows whose stored text actually changes.
func migrateSurveyShapes(db *gorm.DB) error {
	type row struct {
		ParcelID   uint
		SurveyJSON string
	}
	var rows []row
	if err := db.Model(&entities.Parcel{}).
		Where("survey_json <> ''").
		Select("parcel_id", "survey_json").
		Find(&rows).Error; err != nil {
		return err
	}

	migrated := 0
	for _, r := range rows {
		canon, err := entities.DecodeAllocation(r.SurveyJSON).Encode()
		if err != nil || canon == r.SurveyJSON {
			continue
		}
		if err := db.Model(&entities.Parcel{}).
			Where("parcel_id = ?", r.ParcelID).
			Update("survey_json", canon).Error; err != nil {
			return err
		}
		migrated++
	}
	if migrated > 0 {
		log.Printf("[db] rewrote %d legacy survey value(s)", migrated)
	}
	return nil
}
