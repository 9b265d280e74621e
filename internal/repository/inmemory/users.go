package inmemory

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	userdomain "projectconnect-go/internal/domain/user"
)

const cleanupInterval = 5 * time.Minute

// UserCache keeps recently verified users keyed by id.
type UserCache struct {
	items *gocache.Cache
}

func NewUserCache() *UserCache {
	return &UserCache{
		items: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

func (c *UserCache) Get(userID int64) (*userdomain.User, bool) {
	raw, ok := c.items.Get(key(userID))
	if !ok {
		return nil, false
	}
	value := raw.(userdomain.User)
	return &value, true
}

// Set stores user for ttl. A nil user or a non-positive ttl evicts the entry.
func (c *UserCache) Set(userID int64, user *userdomain.User, ttl time.Duration) {
	if user == nil || ttl <= 0 {
		c.items.Delete(key(userID))
		return
	}
	c.items.Set(key(userID), *user, ttl)
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
