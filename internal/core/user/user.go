package user

// User is a registered author identity. This API exposes users read-only;
// accounts are provisioned out of band.
type User struct {
	Username  string `json:"username"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
