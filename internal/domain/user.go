package domain

type User struct {
	ID       int32  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"` // bcrypt hash, never serialized
	IsAdmin  bool   `json:"is_admin"`
}
