package main

import (
	"log"

	"github.com/yukikurage/hr-management-api/internal/config"
	"github.com/yukikurage/hr-management-api/internal/constants"
	"github.com/yukikurage/hr-management-api/internal/database"
	"github.com/yukikurage/hr-management-api/internal/models"
	"github.com/yukikurage/hr-management-api/internal/repository"
	"github.com/yukikurage/hr-management-api/internal/services"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the database with two demo organisations so every tenant-scoped
// view has data on both sides of the boundary. Existing data is cleared.
func main() {
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	db := database.GetDB()

	log.Println("Clearing existing data...")
	for _, model := range []any{
		&models.AuditLog{},
		&models.Membership{},
		&models.Employee{},
		&models.Team{},
		&models.User{},
		&models.Organisation{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			log.Fatalf("Failed to clear data: %v", err)
		}
	}

	userRepo := repository.NewUserRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	audit := services.NewAuditService(auditRepo)
	employees := services.NewEmployeeService(employeeRepo, audit)
	teams := services.NewTeamService(teamRepo, employeeRepo, audit)

	seedOrganisation(userRepo, employees, teams, "Tech Solutions Inc.", "John Admin", "admin@techsolutions.com",
		[]services.EmployeeInput{
			{FirstName: "Alice", LastName: "Johnson", Email: "alice.johnson@techsolutions.com", Phone: "+1-555-0101"},
			{FirstName: "Bob", LastName: "Smith", Email: "bob.smith@techsolutions.com", Phone: "+1-555-0102"},
			{FirstName: "Carol", LastName: "Williams", Email: "carol.williams@techsolutions.com", Phone: "+1-555-0103"},
		},
		[]services.CreateTeamInput{
			{Name: "Engineering", Description: "Product development team"},
			{Name: "Platform", Description: "Infrastructure and tooling"},
		})

	seedOrganisation(userRepo, employees, teams, "Marketing Pro Ltd.", "Sarah Manager", "admin@marketingpro.com",
		[]services.EmployeeInput{
			{FirstName: "Emma", LastName: "Davis", Email: "emma.davis@marketingpro.com", Phone: "+1-555-0201"},
			{FirstName: "Frank", LastName: "Miller", Email: "frank.miller@marketingpro.com", Phone: "+1-555-0202"},
		},
		[]services.CreateTeamInput{
			{Name: "Campaigns", Description: "Campaign planning and delivery"},
		})

	log.Println("Seeding completed. Admin password for both organisations: admin123")
}

func seedOrganisation(
	userRepo repository.UserRepository,
	employees *services.EmployeeService,
	teams *services.TeamService,
	orgName, adminName, adminEmail string,
	staff []services.EmployeeInput,
	teamInputs []services.CreateTeamInput,
) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), constants.BcryptCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	org := &models.Organisation{Name: orgName}
	admin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashed),
		Name:         adminName,
	}
	entry, err := services.NewLogEntry(0, nil, models.ActionOrganisationCreated, models.RegistrationMeta{
		OrgName:   orgName,
		AdminName: adminName,
	})
	if err != nil {
		log.Fatalf("Failed to build audit entry: %v", err)
	}

	if err := userRepo.RegisterOrganisation(org, admin, entry); err != nil {
		log.Fatalf("Failed to seed organisation %q: %v", orgName, err)
	}

	var created []*models.Employee
	for _, input := range staff {
		employee, err := employees.Create(org.ID, admin.ID, input)
		if err != nil {
			log.Fatalf("Failed to seed employee: %v", err)
		}
		created = append(created, employee)
	}

	for i, input := range teamInputs {
		team, err := teams.Create(org.ID, admin.ID, input)
		if err != nil {
			log.Fatalf("Failed to seed team: %v", err)
		}

		// Spread employees across teams round-robin.
		for j, employee := range created {
			if j%len(teamInputs) != i {
				continue
			}
			if err := teams.AssignEmployee(team.ID, employee.ID, org.ID, admin.ID); err != nil {
				log.Fatalf("Failed to seed assignment: %v", err)
			}
		}
	}

	log.Printf("Seeded organisation %q (%d employees, %d teams)", orgName, len(staff), len(teamInputs))
}
