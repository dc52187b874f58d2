package domain

type UserRole string

const (
	Admin   UserRole = "admin"
	AppUser UserRole = "user"
)

type User struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}
