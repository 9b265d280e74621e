package user

import "time"

// Cache remembers users already confirmed to exist, keyed by id.
type Cache interface {
	Get(userID int64) (*User, bool)
	Set(userID int64, user *User, ttl time.Duration)
}

type noopCache struct{}

func (noopCache) Get(int64) (*User, bool) {
	return nil, false
}

func (noopCache) Set(int64, *User, time.Duration) {}
