package models

// User is the static shopper identity. There is no authentication.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

var DefaultUser = User{
	ID:    1,
	Name:  "John Doe",
	Email: "john.doe@example.com",
}
