// Package models holds the data types shared between the API client,
// the session store and the screens.
package models

import (
	"encoding/json"
	"strings"
	"unicode"
)

// User is the account record as the server reports it. Name and Email are
// the fields the client works with; anything else the server assigns is
// carried through Extra untouched, so re-serializing a record never drops
// server-side fields.
type User struct {
	Name  string
	Email string

	Extra map[string]json.RawMessage
}

func (u *User) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["name"]; ok {
		if err := json.Unmarshal(v, &u.Name); err != nil {
			return err
		}
		delete(raw, "name")
	}
	if v, ok := raw["email"]; ok {
		if err := json.Unmarshal(v, &u.Email); err != nil {
			return err
		}
		delete(raw, "email")
	}

	if len(raw) > 0 {
		u.Extra = raw
	} else {
		u.Extra = nil
	}
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(u.Extra)+2)
	for k, v := range u.Extra {
		out[k] = v
	}

	name, err := json.Marshal(u.Name)
	if err != nil {
		return nil, err
	}
	email, err := json.Marshal(u.Email)
	if err != nil {
		return nil, err
	}
	out["name"] = name
	out["email"] = email

	return json.Marshal(out)
}

// Initials returns up to two uppercase initials for display, "U" when the
// name is empty.
func Initials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		initials = append(initials, unicode.ToUpper(r))
		if len(initials) == 2 {
			break
		}
	}
	if len(initials) == 0 {
		return "U"
	}
	return string(initials)
}
