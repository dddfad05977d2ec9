package auth

import (
	"errors"
	"fmt"

	"authbase/config"
	"authbase/models"
	"authbase/services/oauth"
)

// LoginOrCreateOauthUser decides the outcome of an OAuth callback:
// log in the linked user, create a fresh user+link, or reject the
// attempt on an email collision. Evaluation order matters: an existing
// link always wins over an email match, and the collision check only
// runs on first-time provider use.
func (s *Service) LoginOrCreateOauthUser(identity *oauth.User) (*models.User, error) {
	link, err := s.store.FindLink(identity.ProviderType, identity.ID)
	if err != nil {
		return nil, err
	}
	if link != nil {
		// Login path. Email verification is orthogonal here: the
		// provider already asserts the address.
		user, err := s.store.GetUserByID(link.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, fmt.Errorf("link references missing user %d", link.UserID)
		}
		return user, nil
	}

	existing, err := s.store.GetUserByEmail(identity.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &EmailTakenError{Provider: identity.ProviderType}
	}

	// Signup path. User and link are created in one transaction so a
	// partial write can never strand the account.
	user := &models.User{
		Email:           identity.Email,
		Name:            identity.Name,
		Password:        nil,
		Role:            config.DefaultRole,
		IsEmailVerified: true,
	}
	err = s.store.Transaction(func(tx Store) error {
		if err := tx.CreateUser(user); err != nil {
			return err
		}
		return tx.CreateLink(&models.AuthProvider{
			ProviderType:   identity.ProviderType,
			ProviderUserID: identity.ID,
			UserID:         user.ID,
		})
	})
	if errors.Is(err, ErrLinkConflict) || errors.Is(err, ErrEmailConflict) {
		// A concurrent request got its insert in first. An identical
		// identity carries the same email, so either unique index can
		// fire; the committed link decides.
		link, lerr := s.store.FindLink(identity.ProviderType, identity.ID)
		if lerr != nil {
			return nil, lerr
		}
		if link == nil {
			if errors.Is(err, ErrEmailConflict) {
				// No rival link: the email belongs to an account that
				// committed after the pre-insert lookup. Same outcome
				// as the check above.
				return nil, &EmailTakenError{Provider: identity.ProviderType}
			}
			return nil, err
		}
		winner, lerr := s.store.GetUserByID(link.UserID)
		if lerr != nil {
			return nil, lerr
		}
		if winner == nil {
			return nil, err
		}
		return winner, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}
