package dto

// CompanyRequest body para PUT /api/company (registro único del emisor).
type CompanyRequest struct {
	Name         string `json:"name" validate:"required,max=120"`
	NIT          string `json:"nit" validate:"required"`
	NRC          string `json:"nrc,omitempty"`
	Activity     string `json:"activity,omitempty"`
	Address      string `json:"address,omitempty"`
	Department   string `json:"department,omitempty"`
	Municipality string `json:"municipality,omitempty"`
	Phone        string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
}

// CompanyResponse datos del emisor.
type CompanyResponse struct {
	Name         string `json:"name"`
	NIT          string `json:"nit"`
	NRC          string `json:"nrc,omitempty"`
	Activity     string `json:"activity,omitempty"`
	Department   string `json:"department,omitempty"`
	Municipality string `json:"municipality,omitempty"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
}
