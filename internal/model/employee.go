package model

// Employee is a single employee record.
// ID is zero until the store assigns one; it never changes afterwards.
type Employee struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
