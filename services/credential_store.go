package services

import (
	"crypto/subtle"

	"inventory/apperrors"
	"inventory/models"
)

// CredentialStore holds the fixed list of admin identities configured at
// process start.
type CredentialStore struct {
	credentials []models.Credential
}

func NewCredentialStore(credentials []models.Credential) *CredentialStore {
	return &CredentialStore{credentials: credentials}
}

// Validate matches username and password against the configured list. The
// single failure mode does not reveal whether the username exists.
func (s *CredentialStore) Validate(username, password string) (models.Credential, error) {
	for _, cred := range s.credentials {
		if cred.Username != username {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(cred.Password), []byte(password)) == 1 {
			return cred, nil
		}
	}
	return models.Credential{}, apperrors.ErrUnauthorized
}
