package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"textlens/internal/domain/identity"
)

// Provider wraps one OAuth identity provider: the code-flow config plus
// the userinfo endpoint that turns a token into a profile.
type Provider struct {
	Name       string
	config     *oauth2.Config
	profileURL string
	mapProfile func([]byte) (identity.Profile, error)
}

// AuthURL builds the consent-screen redirect for the given state.
func (p *Provider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange trades the callback code for a token and fetches the user's
// profile with it.
func (p *Provider) Exchange(ctx context.Context, code string) (identity.Profile, error) {
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return identity.Profile{}, fmt.Errorf("%s token exchange: %w", p.Name, err)
	}

	resp, err := p.config.Client(ctx, tok).Get(p.profileURL)
	if err != nil {
		return identity.Profile{}, fmt.Errorf("%s userinfo: %w", p.Name, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return identity.Profile{}, fmt.Errorf("%s userinfo: unexpected status %d", p.Name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return identity.Profile{}, fmt.Errorf("%s userinfo read: %w", p.Name, err)
	}
	return p.mapProfile(body)
}

func decodeJSON(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
