package util

import "net/mail"

// ValidEmail accepts a bare address only; display names ("Bob <b@x.io>") are rejected.
func ValidEmail(raw string) bool {
	addr, err := mail.ParseAddress(raw)
	return err == nil && addr.Name == "" && addr.Address == raw
}
