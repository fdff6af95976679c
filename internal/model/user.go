package model

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
)

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}
