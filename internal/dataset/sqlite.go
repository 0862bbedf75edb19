package dataset

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/manishawhade/staff-directory/internal/model"
)

// Schema describes the employees table a SQLite dataset must carry.
// Skills are stored as a JSON array in a text column; manager is NULL
// for employees without one. Exported so fixtures can create it.
const Schema = `
CREATE TABLE IF NOT EXISTS employees (
	id                 INTEGER PRIMARY KEY,
	first_name         TEXT    NOT NULL,
	last_name          TEXT    NOT NULL,
	email              TEXT    NOT NULL,
	department         TEXT    NOT NULL,
	position           TEXT    NOT NULL,
	location           TEXT    NOT NULL,
	salary             REAL    NOT NULL DEFAULT 0,
	hire_date          TEXT    NOT NULL DEFAULT '',
	age                INTEGER NOT NULL DEFAULT 0,
	performance_rating REAL    NOT NULL DEFAULT 0,
	projects_completed INTEGER NOT NULL DEFAULT 0,
	is_active          INTEGER NOT NULL DEFAULT 1,
	skills             TEXT    NOT NULL DEFAULT '[]',
	manager            TEXT
);
`

// LoadSQLite reads the full employees table from a SQLite file and
// returns it as a snapshot. The database is opened read-only and the
// handle is closed before returning; the UI never touches it again.
func LoadSQLite(path string) ([]model.Record, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat database: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	handle, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	defer handle.Close()

	if err := handle.Ping(); err != nil {
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	rows, err := handle.Query(
		`SELECT id, first_name, last_name, email, department, position, location,
		        salary, hire_date, age, performance_rating, projects_completed,
		        is_active, skills, manager
		 FROM employees
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("select employees: %w", err)
	}
	defer rows.Close()

	var records []model.Record
	for rows.Next() {
		var (
			r       model.Record
			skills  string
			manager sql.NullString
		)
		if err := rows.Scan(
			&r.ID,
			&r.FirstName,
			&r.LastName,
			&r.Email,
			&r.Department,
			&r.Position,
			&r.Location,
			&r.Salary,
			&r.HireDate,
			&r.Age,
			&r.PerformanceRating,
			&r.ProjectsCompleted,
			&r.IsActive,
			&skills,
			&manager,
		); err != nil {
			return nil, fmt.Errorf("scan employee row: %w", err)
		}
		if skills != "" {
			if err := json.Unmarshal([]byte(skills), &r.Skills); err != nil {
				return nil, fmt.Errorf("decode skills for employee %d: %w", r.ID, err)
			}
		}
		if manager.Valid {
			m := manager.String
			r.Manager = &m
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employee rows: %w", err)
	}

	return records, nil
}
