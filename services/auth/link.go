package auth

import (
	"authbase/models"
	"authbase/services/oauth"
)

// LinkOauthUser connects a provider identity to an already-authenticated
// user. Idempotent when the identity is already linked to that same user;
// ErrLinkConflict when it belongs to a different user.
func (s *Service) LinkOauthUser(userID uint, identity *oauth.User) (*models.AuthProvider, error) {
	existing, err := s.store.FindLink(identity.ProviderType, identity.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.UserID == userID {
			return existing, nil
		}
		return nil, ErrLinkConflict
	}

	link := &models.AuthProvider{
		ProviderType:   identity.ProviderType,
		ProviderUserID: identity.ID,
		UserID:         userID,
	}
	if err := s.store.CreateLink(link); err != nil {
		return nil, err
	}
	return link, nil
}

// UnlinkOauthProvider removes the user's link for a provider. No-op when
// absent; the user record itself is untouched.
func (s *Service) UnlinkOauthProvider(userID uint, providerType string) error {
	return s.store.DeleteLink(userID, providerType)
}
