package store

import (
	"context"

	"murmur/internal/api"
	"murmur/internal/cache"
	"murmur/internal/models"
)

// UserState holds the currently viewed profile plus the authenticated user's
// membership sets. Following and Likes are id references replaced wholesale
// from mutation responses; views derive "following"/"liked" indicators with
// Refs.Contains and never flip a local boolean.
type UserState struct {
	Profile   *models.User
	Following models.Refs
	Likes     models.Refs
	Loading   bool
	HasError  bool
}

type userFetchStart struct{}

type getProfileSuccess struct {
	user *models.User
}

type getFollowingSuccess struct {
	following models.Refs
}

type getLikesSuccess struct {
	likes models.Refs
}

type clearProfile struct{}

type userError struct{}

func (userFetchStart) isAction()      {}
func (getProfileSuccess) isAction()   {}
func (getFollowingSuccess) isAction() {}
func (getLikesSuccess) isAction()     {}
func (clearProfile) isAction()        {}
func (userError) isAction()           {}

func reduceUser(st UserState, a Action) UserState {
	switch act := a.(type) {
	case userFetchStart:
		st.Loading = true
		st.HasError = false
	case getProfileSuccess:
		st.Loading = false
		st.Profile = act.user
	case getFollowingSuccess:
		st.Loading = false
		st.Following = act.following
	case getLikesSuccess:
		st.Loading = false
		st.Likes = act.likes
	case clearProfile:
		st.Profile = nil
		st.Following = nil
		st.Likes = nil
		st.Loading = false
	case userError:
		st.Loading = false
		st.HasError = true
	}
	return st
}

// GetProfile fetches the profile for username into the viewed-profile slot.
// Profile reads go through the response cache; a short-lived stale profile
// is acceptable here.
func (s *Store) GetProfile(ctx context.Context, username string) {
	s.dispatch(userFetchStart{})

	var user models.User
	err := cache.Aside(ctx, cache.ProfileKey(username), &user, cache.ProfileTTL, func() error {
		fetched, err := s.client.GetProfile(ctx, username)
		if err != nil {
			return err
		}
		user = *fetched
		return nil
	})
	if err != nil {
		s.logger.WarnContext(ctx, "profile fetch failed", "username", username, "error", err)
		s.dispatch(userError{})
		return
	}
	s.dispatch(getProfileSuccess{user: &user})
}

// UpdateProfile updates the authenticated user's profile. The response is
// the refreshed account; it becomes the viewed profile and the cached copy
// is invalidated.
func (s *Store) UpdateProfile(ctx context.Context, in api.UpdateProfileInput) {
	user, err := s.client.UpdateProfile(ctx, in)
	if err != nil {
		s.logger.WarnContext(ctx, "profile update failed", "error", err)
		s.dispatch(userError{})
		s.dispatch(setAlert{alert: alertFrom(err, genericRetryMessage)})
		return
	}
	cache.InvalidateProfile(ctx, user.Username)
	s.dispatch(getProfileSuccess{user: user})
}

// DeleteProfile deletes the authenticated user's account and tears the
// session down.
func (s *Store) DeleteProfile(ctx context.Context) {
	username := ""
	if st := s.State(); st.Auth.User != nil {
		username = st.Auth.User.Username
	}

	if err := s.client.DeleteProfile(ctx); err != nil {
		s.logger.WarnContext(ctx, "profile delete failed", "error", err)
		s.dispatch(userError{})
		s.dispatch(setAlert{alert: alertFrom(err, genericRetryMessage)})
		return
	}
	if username != "" {
		cache.InvalidateProfile(ctx, username)
	}
	s.dispatch(clearProfile{})
	s.clearSession(ctx)
}

// Follow follows the user with the given id. The response replaces the
// following set wholesale; nothing is inferred locally, so a rejected
// mutation leaves the displayed state exactly as the server has it.
func (s *Store) Follow(ctx context.Context, id uint) {
	following, err := s.client.Follow(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "follow failed", "user_id", id, "error", err)
		s.dispatch(userError{})
		s.dispatch(setAlert{alert: alertFrom(err, genericRetryMessage)})
		return
	}
	s.dispatch(getFollowingSuccess{following: following})
}

// Unfollow unfollows the user with the given id, replacing the following
// set from the response.
func (s *Store) Unfollow(ctx context.Context, id uint) {
	following, err := s.client.Unfollow(ctx, id)
	if err != nil {
		s.logger.WarnContext(ctx, "unfollow failed", "user_id", id, "error", err)
		s.dispatch(userError{})
		s.dispatch(setAlert{alert: alertFrom(err, genericRetryMessage)})
		return
	}
	s.dispatch(getFollowingSuccess{following: following})
}

// GetAllFollowing refreshes the authenticated user's complete following set.
func (s *Store) GetAllFollowing(ctx context.Context) {
	following, err := s.client.Following(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "following fetch failed", "error", err)
		s.dispatch(userError{})
		return
	}
	s.dispatch(getFollowingSuccess{following: following})
}

// GetUserLikes refreshes the set of post ids the authenticated user likes.
func (s *Store) GetUserLikes(ctx context.Context) {
	likes, err := s.client.LikedPosts(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "likes fetch failed", "error", err)
		s.dispatch(userError{})
		return
	}
	s.dispatch(getLikesSuccess{likes: likes})
}
