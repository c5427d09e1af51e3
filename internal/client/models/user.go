// Package models defines client-side data models used by the GoalKeeper client.
package models

// User is the profile snapshot kept in the session and in local storage.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlaceholderUser is the identity used when a token is present but the stored
// profile snapshot is missing or unreadable.
func PlaceholderUser() *User {
	return &User{ID: "user-id", Name: "User"}
}

// Profile is the full user record returned by GET /users/profile.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// LoginCredentials is the POST /auth/login body.
type LoginCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is what a successful login yields: the bearer token and,
// when the server sent one, the user profile.
type LoginResult struct {
	Token string
	User  *User
}

// Registration is the POST /auth/register body.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}
