package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// User is the placeholder identity fabricated on login or registration.
type User struct {
	ID       string `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

// Initial returns the upper-cased first letter of the nickname for avatars.
func (u User) Initial() string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(u.Nickname))
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}
