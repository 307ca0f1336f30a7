package models

// User is a registered account. The password hash never leaves the server:
// `json:"-"` keeps it out of every serialized body.
type User struct {
	ID           int      `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	ImageURL     string   `json:"image_url"`
	Bio          string   `json:"bio"`
	Recipes      []Recipe `json:"recipes"` // the user's own body always carries this, possibly empty
}

// UserRef is the flat owner shape embedded in recipe bodies. It has no
// recipe list by construction, so a recipe can never re-expand its owner.
type UserRef struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
}
