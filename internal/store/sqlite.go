package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jobpilot-dev/jobpilot/internal/model"
)

// SQLiteStore persists scraped jobs in a SQLite database. It serves both
// deduplication (HasSeen) and the browse view (List).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures
// the jobs table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS jobs (
		job_id          TEXT PRIMARY KEY,
		title           TEXT NOT NULL,
		link            TEXT NOT NULL,
		company         TEXT NOT NULL,
		company_link    TEXT NOT NULL DEFAULT '',
		city            TEXT NOT NULL DEFAULT '',
		region          TEXT NOT NULL DEFAULT '',
		country         TEXT NOT NULL DEFAULT '',
		description     TEXT NOT NULL DEFAULT '',
		employment_type TEXT NOT NULL DEFAULT '',
		seniority_level TEXT NOT NULL DEFAULT '',
		first_seen      DATETIME NOT NULL
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating jobs table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// HasSeen returns true if the given job ID has already been recorded.
func (s *SQLiteStore) HasSeen(jobID string) (bool, error) {
	var exists int
	err := s.db.QueryRow("SELECT 1 FROM jobs WHERE job_id = ?", jobID).Scan(&exists)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking seen status for %s: %w", jobID, err)
	}
	return true, nil
}

// Save records a job. If the ID already exists the call is a no-op.
func (s *SQLiteStore) Save(job model.Job) error {
	firstSeen := job.FirstSeen
	if firstSeen.IsZero() {
		firstSeen = time.Now()
	}

	var description, employmentType, seniority string
	if job.Details != nil {
		description = job.Details.Description
		employmentType = string(job.Details.EmploymentType)
		seniority = job.Details.SeniorityLevel
	}

	_, err := s.db.Exec(`INSERT OR IGNORE INTO jobs
		(job_id, title, link, company, company_link, city, region, country,
		 description, employment_type, seniority_level, first_seen)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		job.ID, job.Title, job.Link, job.Company.Name, job.Company.Link,
		job.Location.City, job.Location.Region, string(job.Location.Country),
		description, employmentType, seniority, firstSeen,
	)
	if err != nil {
		return fmt.Errorf("saving job %s: %w", job.ID, err)
	}
	return nil
}

// List returns all stored jobs, most recently seen first.
func (s *SQLiteStore) List() ([]model.Job, error) {
	rows, err := s.db.Query(`SELECT job_id, title, link, company, company_link,
		city, region, country, description, employment_type, seniority_level, first_seen
		FROM jobs ORDER BY first_seen DESC, job_id`)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		var j model.Job
		var country, description, employmentType, seniority string
		if err := rows.Scan(&j.ID, &j.Title, &j.Link, &j.Company.Name, &j.Company.Link,
			&j.Location.City, &j.Location.Region, &country,
			&description, &employmentType, &seniority, &j.FirstSeen); err != nil {
			return nil, fmt.Errorf("scanning job row: %w", err)
		}
		j.Location.Country = model.Country(country)
		if description != "" || employmentType != "" || seniority != "" {
			j.Details = &model.JobDetails{
				Description:    description,
				EmploymentType: model.EmploymentType(employmentType),
				SeniorityLevel: seniority,
			}
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	return jobs, nil
}

// Cleanup deletes job entries first seen longer ago than the given duration.
func (s *SQLiteStore) Cleanup(olderThan time.Duration) error {
	cutoff := time.Now().Add(-olderThan)
	_, err := s.db.Exec("DELETE FROM jobs WHERE first_seen < ?", cutoff)
	if err != nil {
		return fmt.Errorf("cleaning up jobs older than %v: %w", olderThan, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
