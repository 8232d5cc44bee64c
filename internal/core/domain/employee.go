package domain

// EmployeeStatus is the closed set of employment states.
type EmployeeStatus string

const (
	StatusActive   EmployeeStatus = "Active"
	StatusInactive EmployeeStatus = "Inactive"
	StatusOnLeave  EmployeeStatus = "On Leave"
)

var allowedStatuses = []EmployeeStatus{StatusActive, StatusInactive, StatusOnLeave}

// IsValid reports whether s is one of the allowed statuses.
func (s EmployeeStatus) IsValid() bool {
	for _, allowed := range allowedStatuses {
		if allowed == s {
			return true
		}
	}
	return false
}

// Employee is a single directory record. All fields are free text except Status.
type Employee struct {
	ID     string         `json:"id" bson:"id"`
	Name   string         `json:"name" bson:"name"`
	Email  string         `json:"email" bson:"email"`
	Dept   string         `json:"dept" bson:"dept"`
	Role   string         `json:"role" bson:"role"`
	Status EmployeeStatus `json:"status" bson:"status"`
}

// Field returns the string value of a sortable/searchable field by its JSON name.
func (e Employee) Field(name string) string {
	switch name {
	case "id":
		return e.ID
	case "name":
		return e.Name
	case "email":
		return e.Email
	case "dept":
		return e.Dept
	case "role":
		return e.Role
	case "status":
		return string(e.Status)
	}
	return ""
}

// SeedEmployees is the data set written when the store is initialised for the first time.
func SeedEmployees() []Employee {
	return []Employee{
		{ID: "E1001", Name: "Ava Patel", Email: "ava@company.com", Dept: "Engineering", Role: "Developer", Status: StatusActive},
		{ID: "E1002", Name: "Noah Kim", Email: "noah@company.com", Dept: "Finance", Role: "Analyst", Status: StatusActive},
		{ID: "E1003", Name: "Mia Singh", Email: "mia@company.com", Dept: "HR", Role: "Recruiter", Status: StatusInactive},
	}
}
