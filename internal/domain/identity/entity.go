package identity

// Profile is the slice of an identity-provider profile the app keeps in
// the session.
type Profile struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Photo       string `json:"photo"`
}
