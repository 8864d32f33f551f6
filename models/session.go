package models

// Session is a snapshot of the locally persisted identity of the device user.
// Nil pointers mean the value has never been stored or was cleared.
type Session struct {
	AccessToken *string `json:"access_token,omitempty"`
	UserID      *int64  `json:"user_id,omitempty"`
	Username    *string `json:"username,omitempty"`
	DarkTheme   bool    `json:"dark_theme"`
	AvatarPath  *string `json:"avatar_path,omitempty"`
}

// IsAuthenticated reports whether an access token is present.
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != nil && *s.AccessToken != ""
}
