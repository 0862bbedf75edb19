package dataset_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/manishawhade/staff-directory/internal/dataset"
)

func TestSeedDecodes(t *testing.T) {
	records, err := dataset.Seed()
	if err != nil {
		t.Fatalf("Seed returned error: %v", err)
	}
	if len(records) == 0 {
		t.Fatal("seed dataset is empty")
	}

	var withManager, withoutManager, emptySkills bool
	for _, r := range records {
		if r.Manager != nil {
			withManager = true
		} else {
			withoutManager = true
		}
		if len(r.Skills) == 0 {
			emptySkills = true
		}
		if r.ID == 0 {
			t.Fatalf("record %s %s has no id", r.FirstName, r.LastName)
		}
	}
	if !withManager || !withoutManager {
		t.Fatal("seed should contain records both with and without a manager")
	}
	if !emptySkills {
		t.Fatal("seed should contain at least one record with no skills")
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staff.json")
	payload := `[{"id": 7, "firstName": "Lena", "lastName": "Vogel",
		"email": "lena@example.com", "department": "Sales",
		"position": "Account Executive", "location": "Chicago",
		"salary": 87000, "hireDate": "2019-11-04", "age": 31,
		"performanceRating": 4.1, "projectsCompleted": 14,
		"isActive": true, "skills": ["Negotiation"], "manager": null}]`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	records, err := dataset.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.ID != 7 || r.FirstName != "Lena" || r.Salary != 87000 {
		t.Fatalf("unexpected record: %+v", r)
	}
	if r.Manager != nil {
		t.Fatalf("manager = %v, want nil", *r.Manager)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := dataset.LoadFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "staff.db")

	db, err := sql.Open("sqlite", "file:"+dbPath)
	if err != nil {
		t.Fatalf("open fixture database: %v", err)
	}
	if _, err := db.Exec(dataset.Schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	_, err = db.Exec(
		`INSERT INTO employees (id, first_name, last_name, email, department, position,
		                        location, salary, hire_date, age, performance_rating,
		                        projects_completed, is_active, skills, manager)
		 VALUES (1, 'Sarah', 'Chen', 'sarah@example.com', 'Engineering', 'Manager',
		         'San Francisco', 148000, '2016-03-14', 41, 4.6, 32, 1,
		         '["Go","Kubernetes"]', NULL),
		        (2, 'Marcus', 'Webb', 'marcus@example.com', 'Engineering', 'Engineer',
		         'San Francisco', 124000, '2018-07-02', 34, 4.2, 21, 1,
		         '["Python Programming","SQL"]', 'Sarah Chen')`,
	)
	if err != nil {
		t.Fatalf("insert fixture rows: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close fixture database: %v", err)
	}

	records, err := dataset.LoadSQLite(dbPath)
	if err != nil {
		t.Fatalf("LoadSQLite returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	if records[0].Manager != nil {
		t.Fatalf("record 1 manager = %v, want nil", *records[0].Manager)
	}
	if records[1].Manager == nil || *records[1].Manager != "Sarah Chen" {
		t.Fatalf("record 2 manager = %v, want Sarah Chen", records[1].Manager)
	}
	if len(records[0].Skills) != 2 || records[0].Skills[0] != "Go" {
		t.Fatalf("record 1 skills = %v", records[0].Skills)
	}
	if records[1].Salary != 124000 {
		t.Fatalf("record 2 salary = %v, want 124000", records[1].Salary)
	}
}

func TestLoadSQLiteMissing(t *testing.T) {
	if _, err := dataset.LoadSQLite(filepath.Join(t.TempDir(), "absent.db")); err == nil {
		t.Fatal("expected error for missing database")
	}
	if _, err := dataset.LoadSQLite(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}
