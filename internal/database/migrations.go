package database

import (
	"fmt"
	"log"

	"github.com/yukikurage/hr-management-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes ensures the indexes the tagged models declare actually exist.
// AutoMigrate creates them on fresh databases; this pass backfills databases
// migrated by earlier versions. The membership index is the one that matters
// for correctness: it is the unique (employee_id, team_id) constraint backing
// the duplicate-assignment check.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model any
		name  string
	}{
		{&models.Membership{}, "idx_memberships_employee_team"},
		{&models.User{}, "idx_users_organisation_id"},
		{&models.Employee{}, "idx_employees_organisation_id"},
		{&models.Team{}, "idx_teams_organisation_id"},
		{&models.AuditLog{}, "idx_audit_logs_organisation_id"},
		{&models.AuditLog{}, "idx_audit_logs_timestamp"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.model, idx.name) {
			continue
		}

		if err := db.Migrator().CreateIndex(idx.model, idx.name); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s", idx.name)
	}

	return nil
}
