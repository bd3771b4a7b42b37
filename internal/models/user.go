package models

type User struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
	Role     string `json:"role" db:"role"`
}

const DefaultRole = "admin"
