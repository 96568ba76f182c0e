package main

import (
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"jobboard-be/internal/entity"
	"jobboard-be/internal/mapper"
	"jobboard-be/pkg/database"
)

type seedJob struct {
	Title        string
	Summary      string
	Locations    []entity.Location
	Url          string
	RemotePolicy string
	DaysPerWeek  *int
	SalaryMin    *int
	SalaryMax    *int
	TechStack    []string
}

type seedCompany struct {
	Name            string
	Description     string
	Locations       []entity.Location
	Url             string
	CompanySize     string
	OwnershipType   string
	FundingType     string
	AmountRaised    *int64
	LastRoundLetter *string
	Jobs            []seedJob
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting seed...")

	companyMapper := mapper.NewCompanyMapper()
	jobMapper := mapper.NewJobMapper()

	for _, data := range companies() {
		company := &entity.Company{
			Id:              uuid.New(),
			Name:            data.Name,
			Description:     data.Description,
			Locations:       data.Locations,
			Url:             data.Url,
			Logo:            logoURL(data.Name),
			CompanySize:     data.CompanySize,
			OwnershipType:   data.OwnershipType,
			FundingType:     data.FundingType,
			AmountRaised:    data.AmountRaised,
			LastRoundLetter: data.LastRoundLetter,
			CreatedAt:       time.Now(),
		}

		if err := db.Create(companyMapper.ToModel(company)).Error; err != nil {
			color.Red("Failed to create company %s: %v", data.Name, err)
			continue
		}
		color.Green("Created company: %s", data.Name)

		// Companies sometimes post their openings on the same day.
		sameDay := rand.Float64() < 0.5
		basePostedAt := recentDate(30)

		for _, jd := range data.Jobs {
			postedAt := basePostedAt
			if !sameDay {
				postedAt = recentDate(30)
			}

			description, requirements, responsibilities := generateJobDescription(
				data.Name, jd.Title, jd.Summary, jd.TechStack, jd.RemotePolicy,
			)
			perks, benefits := generatePerksAndBenefits(data.CompanySize, jd.RemotePolicy, data.OwnershipType)

			job := &entity.Job{
				Id:               uuid.New(),
				Title:            jd.Title,
				Description:      description,
				Requirements:     requirements,
				Responsibilities: responsibilities,
				Perks:            perks,
				Benefits:         benefits,
				CompanyId:        company.Id,
				Locations:        jd.Locations,
				Url:              jd.Url,
				RemotePolicy:     jd.RemotePolicy,
				EmploymentType:   generateEmploymentType(),
				DaysPerWeek:      jd.DaysPerWeek,
				SalaryMin:        jd.SalaryMin,
				SalaryMax:        jd.SalaryMax,
				TechStack:        jd.TechStack,
				CreatedAt:        postedAt,
			}

			if err := db.Create(jobMapper.ToModel(job)).Error; err != nil {
				color.Red("  Failed to create job %s: %v", jd.Title, err)
				continue
			}
		}
		color.Green("  Created %d jobs for %s", len(data.Jobs), data.Name)
	}

	color.Cyan("Seed completed!")
}

func recentDate(days int) time.Time {
	return time.Now().Add(-time.Duration(rand.Intn(days*24)) * time.Hour)
}

func logoURL(name string) *string {
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	url := "https://picsum.photos/seed/" + slug + "/200/200"
	return &url
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }
