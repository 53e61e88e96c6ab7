package oauth

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"textlens/internal/domain/identity"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

func NewGoogle(clientID, clientSecret, callbackURL string) *Provider {
	return &Provider{
		Name: "google",
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		profileURL: googleUserinfoURL,
		mapProfile: mapGoogleProfile,
	}
}

func mapGoogleProfile(data []byte) (identity.Profile, error) {
	var u struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture string `json:"picture"`
	}
	if err := decodeJSON(data, &u); err != nil {
		return identity.Profile{}, err
	}
	return identity.Profile{
		ID:          u.ID,
		DisplayName: u.Name,
		Email:       u.Email,
		Photo:       u.Picture,
	}, nil
}
