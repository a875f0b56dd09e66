package auth

// Credentials is the payload of both signup and login.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is what the store's auth API hands back on success.
type Session struct {
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
	TokenType    string
	ExpiresIn    int
}

type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type LoginResponse struct {
	Message      string `json:"message"`
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

type authUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// authPayload covers both signup shapes: a bare user when email
// confirmation is pending, or a full session with a nested user.
type authPayload struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	User         *authUser `json:"user"`

	ID    string `json:"id"`
	Email string `json:"email"`
}

func (p *authPayload) userID() string {
	if p.User != nil && p.User.ID != "" {
		return p.User.ID
	}
	return p.ID
}

func (p *authPayload) toSession() *Session {
	email := p.Email
	if p.User != nil && p.User.Email != "" {
		email = p.User.Email
	}
	return &Session{
		UserID:       p.userID(),
		Email:        email,
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		TokenType:    p.TokenType,
		ExpiresIn:    p.ExpiresIn,
	}
}
