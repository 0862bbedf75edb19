package model

// Record represents one employee row in the directory snapshot.
type Record struct {
	ID                int64    `json:"id"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Email             string   `json:"email"`
	Department        string   `json:"department"`
	Position          string   `json:"position"`
	Location          string   `json:"location"`
	Salary            float64  `json:"salary"`
	HireDate          string   `json:"hireDate"`
	Age               int      `json:"age"`
	PerformanceRating float64  `json:"performanceRating"`
	ProjectsCompleted int      `json:"projectsCompleted"`
	IsActive          bool     `json:"isActive"`
	Skills            []string `json:"skills"`
	Manager           *string  `json:"manager"`
}

// Field keys used by the column model. A column may only reference one
// of these; an unknown key resolves to nil and displays as an empty cell.
const (
	FieldID                = "id"
	FieldFirstName         = "firstName"
	FieldLastName          = "lastName"
	FieldEmail             = "email"
	FieldDepartment        = "department"
	FieldPosition          = "position"
	FieldLocation          = "location"
	FieldSalary            = "salary"
	FieldHireDate          = "hireDate"
	FieldAge               = "age"
	FieldPerformanceRating = "performanceRating"
	FieldProjectsCompleted = "projectsCompleted"
	FieldIsActive          = "isActive"
	FieldSkills            = "skills"
	FieldManager           = "manager"
)

// FieldValue returns the raw value of the named field. The Manager field
// yields nil when the record has no manager, so renderers can treat
// "absent" uniformly. Unknown field keys yield nil.
func FieldValue(r Record, field string) any {
	switch field {
	case FieldID:
		return r.ID
	case FieldFirstName:
		return r.FirstName
	case FieldLastName:
		return r.LastName
	case FieldEmail:
		return r.Email
	case FieldDepartment:
		return r.Department
	case FieldPosition:
		return r.Position
	case FieldLocation:
		return r.Location
	case FieldSalary:
		return r.Salary
	case FieldHireDate:
		return r.HireDate
	case FieldAge:
		return r.Age
	case FieldPerformanceRating:
		return r.PerformanceRating
	case FieldProjectsCompleted:
		return r.ProjectsCompleted
	case FieldIsActive:
		return r.IsActive
	case FieldSkills:
		return r.Skills
	case FieldManager:
		if r.Manager == nil {
			return nil
		}
		return *r.Manager
	}
	return nil
}

// FullName joins the name fields for display and manager matching.
func FullName(r Record) string {
	if r.FirstName == "" {
		return r.LastName
	}
	if r.LastName == "" {
		return r.FirstName
	}
	return r.FirstName + " " + r.LastName
}
