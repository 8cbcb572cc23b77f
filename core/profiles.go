package core

import (
	"context"
	"fmt"
	"strings"
)

// CreateProfile stores a new survey profile. The idName must be non-empty
// and not already taken.
func (s *Service) CreateProfile(ctx context.Context, p UserProfile) (*UserProfile, error) {
	p.IDName = strings.TrimSpace(p.IDName)
	if p.IDName == "" {
		return nil, fmt.Errorf("%w: idName", ErrValidation)
	}
	p.Email = normalizeEmail(p.Email)
	if err := s.profiles.Create(ctx, p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Profiles returns every stored profile.
func (s *Service) Profiles(ctx context.Context) ([]UserProfile, error) {
	return s.profiles.All(ctx)
}

// Profile fetches one profile by idName.
func (s *Service) Profile(ctx context.Context, idName string) (*UserProfile, error) {
	idName = strings.TrimSpace(idName)
	if idName == "" {
		return nil, fmt.Errorf("%w: idName", ErrValidation)
	}
	return s.profiles.ByIDName(ctx, idName)
}

// ProfilesByEmail returns every profile carrying the exact e-mail. Multiple
// profiles may share an address.
func (s *Service) ProfilesByEmail(ctx context.Context, email string) ([]UserProfile, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email", ErrValidation)
	}
	return s.profiles.ByEmail(ctx, email)
}

// SearchProfiles matches idName or email by case-insensitive substring.
func (s *Service) SearchProfiles(ctx context.Context, q string) ([]UserProfile, error) {
	if strings.TrimSpace(q) == "" {
		return nil, fmt.Errorf("%w: q", ErrValidation)
	}
	return s.profiles.Search(ctx, q)
}

// EmailExists reports whether any profile has the exact e-mail. The presence
// check never fetches document bodies; the count is a second query and only
// runs when asked for.
func (s *Service) EmailExists(ctx context.Context, email string, withCount bool) (exists bool, count int64, err error) {
	email = normalizeEmail(email)
	if email == "" {
		return false, 0, fmt.Errorf("%w: email", ErrValidation)
	}
	exists, err = s.profiles.ExistsByEmail(ctx, email)
	if err != nil || !exists || !withCount {
		return exists, 0, err
	}
	count, err = s.profiles.CountByEmail(ctx, email)
	return exists, count, err
}

// UpdateProfile renames a profile's idName and/or email. At least one field
// must be provided.
func (s *Service) UpdateProfile(ctx context.Context, idName string, upd ProfileUpdate) error {
	idName = strings.TrimSpace(idName)
	if idName == "" {
		return fmt.Errorf("%w: idName", ErrValidation)
	}
	if upd.IDName != nil {
		v := strings.TrimSpace(*upd.IDName)
		if v == "" {
			return fmt.Errorf("%w: newIdName", ErrValidation)
		}
		upd.IDName = &v
	}
	if upd.Email != nil {
		v := normalizeEmail(*upd.Email)
		upd.Email = &v
	}
	if upd.IDName == nil && upd.Email == nil {
		return ErrNoChange
	}
	return s.profiles.Rename(ctx, idName, upd)
}

// DeleteProfile removes a profile by idName. There is no soft delete.
func (s *Service) DeleteProfile(ctx context.Context, idName string) error {
	idName = strings.TrimSpace(idName)
	if idName == "" {
		return fmt.Errorf("%w: idName", ErrValidation)
	}
	return s.profiles.Delete(ctx, idName)
}
