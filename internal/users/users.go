// Package users provides the pre-registered credential pool used for
// session provisioning, keyed by environment name.
package users

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed testdata
var poolFS embed.FS

// User is one pre-registered account in the pool.
type User struct {
	Key      string `json:"key"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type pool struct {
	Users []User `json:"users"`
}

// Users returns the credential pool for the given environment.
func Users(env string) ([]User, error) {
	raw, err := poolFS.ReadFile(fmt.Sprintf("testdata/%s/users.json", env))
	if err != nil {
		return nil, fmt.Errorf("no user pool for environment %q: %w", env, err)
	}
	var p pool
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("invalid user pool for environment %q: %w", env, err)
	}
	if len(p.Users) == 0 {
		return nil, fmt.Errorf("user pool for environment %q is empty", env)
	}
	return p.Users, nil
}

// ByIndex selects a user from the pool using modulo over the pool size, so
// any worker index maps deterministically onto a provisioned account.
func ByIndex(env string, index int) (User, error) {
	users, err := Users(env)
	if err != nil {
		return User{}, err
	}
	return users[index%len(users)], nil
}
