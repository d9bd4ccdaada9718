package dto

// LoginForm describes the login form payload.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// RegisterForm describes the registration form payload.
type RegisterForm struct {
	Username        string `form:"username"`
	Password        string `form:"password"`
	PasswordConfirm string `form:"passwordConfirm"`
}

// FormPage describes a rendered form state for GET endpoints.
type FormPage struct {
	Form  string `json:"form"`
	Error string `json:"error,omitempty"`
}
