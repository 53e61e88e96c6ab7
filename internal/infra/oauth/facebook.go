package oauth

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"

	"textlens/internal/domain/identity"
)

const facebookUserinfoURL = "https://graph.facebook.com/me?fields=id,name,email,picture.type(large)"

func NewFacebook(clientID, clientSecret, callbackURL string) *Provider {
	return &Provider{
		Name: "facebook",
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"email", "public_profile"},
			Endpoint:     facebook.Endpoint,
		},
		profileURL: facebookUserinfoURL,
		mapProfile: mapFacebookProfile,
	}
}

func mapFacebookProfile(data []byte) (identity.Profile, error) {
	var u struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture struct {
			Data struct {
				URL string `json:"url"`
			} `json:"data"`
		} `json:"picture"`
	}
	if err := decodeJSON(data, &u); err != nil {
		return identity.Profile{}, err
	}
	return identity.Profile{
		ID:          u.ID,
		DisplayName: u.Name,
		Email:       u.Email,
		Photo:       u.Picture.Data.URL,
	}, nil
}
