package autoparts

import (
	"golang.org/x/crypto/bcrypt"
)

func validateLogin(login string) error {
	if login == "" {
		return ErrLoginNotValid
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return ErrPasswordNotValid
	}
	return nil
}

func HashPassword(password string) (string, error) {
	cost := 14
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// yearWithin checks a year against optional range bounds. A nil bound is
// unbounded on that side.
func yearWithin(start, end *int, year int) bool {
	if start != nil && year < *start {
		return false
	}
	if end != nil && year > *end {
		return false
	}
	return true
}

// clampStock applies a stock delta and floors the result at zero. The boolean
// reports whether flooring happened.
func clampStock(quantity, delta int) (int, bool) {
	next := quantity + delta
	if next < 0 {
		return 0, true
	}
	return next, false
}
