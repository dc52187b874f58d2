package domain

// Company is the singleton dealership document. Name, address, phone and
// email are required on update; the rest is optional branding.
type Company struct {
	Name      string  `json:"name" validate:"required"`
	TaxID     string  `json:"taxId"`
	Address   string  `json:"address" validate:"required"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Phone     string  `json:"phone" validate:"required"`
	Email     string  `json:"email" validate:"required"`
	Facebook  string  `json:"facebook"`
	Instagram string  `json:"instagram"`
	Logo      *string `json:"logo"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

func DefaultCompany() *Company {
	return &Company{
		Name:    "Garage Premium",
		TaxID:   "12.345.678/0001-90",
		Address: "123 Flower Street - Downtown",
		City:    "Sao Paulo",
		State:   "SP",
		Phone:   "(11) 99999-9999",
		Email:   "contact@garagepremium.com",
	}
}
