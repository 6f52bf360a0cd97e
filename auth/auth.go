package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"
)

// Anonymous is the user of requests that were not authenticated.
const Anonymous = "anonymous"

func New(apiKeyToUserName map[string]string, next http.Handler) *Auth {
	return &Auth{
		Next:             next,
		APIKeyToUserName: apiKeyToUserName,
	}
}

// Auth requires an API key in the Authorization header, with or without a
// "Bearer " prefix, and makes the associated user name available to Next.
type Auth struct {
	Next             http.Handler
	APIKeyToUserName map[string]string
}

// LoadFromFile reads a JSON object of API keys to user names.
func LoadFromFile(name string) (apiKeyToUserName map[string]string, err error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m := make(map[string]string)
	if err = json.NewDecoder(f).Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

type userContextKey int

const userKey userContextKey = 0

// GetUser returns the authenticated user.
func GetUser(r *http.Request) (user string, ok bool) {
	user, ok = r.Context().Value(userKey).(string)
	return
}

// User returns the authenticated user, or Anonymous when authentication is disabled.
func User(r *http.Request) string {
	if user, ok := GetUser(r); ok {
		return user
	}
	return Anonymous
}

func (a *Auth) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
	user, ok := a.APIKeyToUserName[key]
	if key == "" || !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	r = r.WithContext(context.WithValue(r.Context(), userKey, user))
	a.Next.ServeHTTP(w, r)
}
