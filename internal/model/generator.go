package model

// GenerateRequest represents a one-shot password generation request.
// Pointer bools allow distinguishing between missing (nil -> default) and explicit false.
type GenerateRequest struct {
	Length  int   `json:"length"`
	Digits  *bool `json:"digits"`
	Symbols *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// ConfigureRequest changes the generator view's options. Nil fields are left untouched.
type ConfigureRequest struct {
	Length  *int  `json:"length"`
	Digits  *bool `json:"digits"`
	Symbols *bool `json:"symbols"`
}

// PasswordState represents the generator view: the current options and password.
type PasswordState struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
	Digits   bool   `json:"digits"`
	Symbols  bool   `json:"symbols"`
}
