package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"

	"talentsift/resume-screener/internal/config"
	"talentsift/resume-screener/internal/matching"
	"talentsift/resume-screener/internal/models"
	"talentsift/resume-screener/internal/repositories"
)

// Seeds the job catalog from a CSV file of (title, description) rows.
// Keyword sets are computed once here and cached on the row, so matching
// never re-tokenizes descriptions.
func main() {
	csvPath := "./job_descriptions.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	jobRepo := repositories.NewJobRepository(db)

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatalf("failed to open %s: %v", csvPath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	successCount := 0
	skipCount := 0
	failCount := 0
	line := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Printf("line %d: bad record: %v", line, err)
			failCount++
			continue
		}
		if len(record) < 2 {
			log.Printf("line %d: expected title,description", line)
			failCount++
			continue
		}

		title, description := record[0], record[1]
		if line == 1 && title == "Job Title" {
			// Header row.
			continue
		}

		if _, err := jobRepo.FindByTitle(title); err == nil {
			log.Printf("skipping %q: already seeded", title)
			skipCount++
			continue
		}

		job := models.JobPosting{
			Title:       title,
			Description: description,
			Keywords:    matching.ExtractKeywords(description).Join(),
		}
		if err := jobRepo.Create(&job); err != nil {
			log.Printf("failed to seed %q: %v", title, err)
			failCount++
			continue
		}

		log.Printf("seeded %q", title)
		successCount++
	}

	fmt.Printf("done: %d seeded, %d skipped, %d failed\n", successCount, skipCount, failCount)
}
