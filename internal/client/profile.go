package client

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

type ProfileStatus string

const (
	ProfileLoading ProfileStatus = "loading"
	ProfileLoaded  ProfileStatus = "loaded"
	ProfileFailed  ProfileStatus = "failed"
)

const (
	loadingText    = "Loading..."
	loadFailedText = "Failed to load profile"
)

// ProfileState is the outcome of the one profile load per run.
type ProfileState struct {
	Status  ProfileStatus
	Profile *Profile
	Err     error
}

// Message is the placeholder text shown instead of the page, if any.
func (s ProfileState) Message() string {
	switch s.Status {
	case ProfileLoading, "":
		return loadingText
	case ProfileFailed:
		return loadFailedText
	}
	return ""
}

// FetchProfile fetches and normalizes the profile. A `null` body is
// malformed, not an empty profile.
func (c *Client) FetchProfile(ctx context.Context) (Profile, error) {
	var raw *ApiProfile
	if err := c.doJSON(ctx, http.MethodGet, profilePath, nil, &raw); err != nil {
		return Profile{}, err
	}
	if raw == nil {
		return Profile{}, fmt.Errorf("%w: %s: null profile", ErrMalformed, profilePath)
	}
	return Normalize(c.baseURL, *raw), nil
}

// LoadProfile folds every fetch failure into the failed state. There is no
// retry and no partially rendered profile.
func (c *Client) LoadProfile(ctx context.Context) ProfileState {
	profile, err := c.FetchProfile(ctx)
	if err != nil {
		zap.L().Warn("LoadProfile(): failed to fetch profile", zap.Error(err))
		return ProfileState{Status: ProfileFailed, Err: err}
	}
	return ProfileState{Status: ProfileLoaded, Profile: &profile}
}
