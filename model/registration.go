package models

// RegistrationForm is the transient form state submitted by the registration
// page. It is never persisted here; on successful validation it is handed off
// to the submission collaborator unchanged.
type RegistrationForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}
