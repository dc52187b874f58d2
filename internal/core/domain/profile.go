package domain

// Profile is the singleton account document of the deployment. Updates are
// last-write-wins; GET falls back to DefaultProfile when nothing was saved.
type Profile struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Company      string `json:"company"`
	ProfileImage string `json:"profileImage"`
	PasswordHash string `json:"password_hash,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// ProfileUpdate is the PUT payload. A password change is requested only when
// both password fields are present.
type ProfileUpdate struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Company         string `json:"company"`
	ProfileImage    string `json:"profileImage"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func DefaultProfile() *Profile {
	return &Profile{
		ID:      1,
		Name:    "Admin User",
		Email:   "admin@garage.com",
		Phone:   "(11) 99999-9999",
		Company: "Garage Premium",
	}
}
