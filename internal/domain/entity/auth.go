package entity

import "time"

// Identity is the provider-side account backing a user profile.
type Identity struct {
	UID           string `json:"uid"`
	Email         string `json:"email"`
	DisplayName   string `json:"display_name"`
	EmailVerified bool   `json:"email_verified"`
	Disabled      bool   `json:"disabled"`
}

// AuthSession is the token set returned by a successful sign-in.
type AuthSession struct {
	IDToken      string       `json:"id_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
	Profile      *UserProfile `json:"profile"`
	IsNewUser    bool         `json:"is_new_user"`
}

// ProviderSignIn is the provider result before the profile is attached.
type ProviderSignIn struct {
	Identity     Identity
	IDToken      string
	RefreshToken string
	ExpiresIn    time.Duration
	IsNewUser    bool
}
