package models

// SignInData is the payload of a sign-in request.
// swagger:model SignInData
type SignInData struct {
	Username string `json:"username" validate:"required,max=50" example:"alice"`
	Password string `json:"password" validate:"required,max=128" example:"p@ss1234"`
}

// RefreshData is the payload of a token refresh request.
// swagger:model RefreshData
type RefreshData struct {
	UserUUID     string `json:"userUUID" validate:"required,uuid" example:"5f0c2a4e-8d1b-4a57-9b7e-3c2d1e0f9a88"`
	RefreshToken string `json:"refreshToken" validate:"required" example:"0b8f5d0e-2d57-4bb0-9d43-1f1c7a1de3c4"`
}

// Tokens is a freshly issued access/refresh token pair.
// swagger:model Tokens
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// SignInResult is the payload of a successful sign-in.
// swagger:model SignInResult
type SignInResult struct {
	User         UserPublic `json:"user"`
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken"`
}
