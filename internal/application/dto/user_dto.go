package dto

// CreateUserRequest alta de usuario dentro de una empresa. El email se deriva
// como lower(username) + "@" + dominio de la empresa; no se acepta directo.
type CreateUserRequest struct {
	Username            string         `json:"username"`
	DisplayName         string         `json:"displayName"`
	Role                string         `json:"role"` // COMPANY_ADMIN / CEO / CFO / KAM
	TempPassword        string         `json:"tempPassword"`
	ForcePasswordChange bool           `json:"forcePasswordChange"`
	Permissions         map[string]any `json:"permissions"`
}

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID                  string         `json:"id"`
	Email               string         `json:"email"`
	DisplayName         string         `json:"displayName"`
	Role                string         `json:"role"`
	CompanyID           *string        `json:"companyId"`
	ForcePasswordChange bool           `json:"forcePasswordChange"`
	IsActive            bool           `json:"isActive"`
	Permissions         map[string]any `json:"permissions"`
}
