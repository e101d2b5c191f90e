package migrations

import (
	"gorm.io/gorm"

	"github.com/sumacommu/sumatest-sub000/models"
)

// GetMigrations lists the schema migrations in order. The rating split turns
// the historical single rating column into soloRating/teamRating while keeping
// existing values.
func GetMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "create_users_table",
			Up: func(db *gorm.DB) error {
				return db.AutoMigrate(&models.User{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&models.User{})
			},
		},
		{
			Name: "create_matches_table",
			Up: func(db *gorm.DB) error {
				return db.AutoMigrate(&models.Match{})
			},
			Down: func(db *gorm.DB) error {
				return db.Migrator().DropTable(&models.Match{})
			},
		},
		{
			Name: "split_rating_into_solo_and_team",
			Up: func(db *gorm.DB) error {
				if !db.Migrator().HasColumn(&models.User{}, "rating") {
					return nil
				}
				if err := db.Exec("UPDATE users SET solo_rating = rating, team_rating = rating").Error; err != nil {
					return err
				}
				return db.Migrator().DropColumn(&models.User{}, "rating")
			},
			Down: func(db *gorm.DB) error {
				if err := db.Exec("ALTER TABLE users ADD COLUMN rating integer DEFAULT 1500").Error; err != nil {
					return err
				}
				return db.Exec("UPDATE users SET rating = solo_rating").Error
			},
		},
	}
}
