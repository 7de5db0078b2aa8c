package dto

// RegisterResponse is returned when an organisation is registered.
type RegisterResponse struct {
	Token          string `json:"token"`
	OrganisationID uint64 `json:"orgId"`
	Message        string `json:"message"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token          string `json:"token"`
	OrganisationID uint64 `json:"orgId"`
	UserName       string `json:"userName"`
}
