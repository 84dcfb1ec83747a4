package db

import (
	"fmt"

	"fintrack-server/src/models"

	"github.com/dgraph-io/ristretto"
	"github.com/sirupsen/logrus"
)

// Cache holds user records looked up by the auth middleware. User records are
// immutable after signup, so entries never go stale. Aggregate results are
// never cached here.
var Cache *ristretto.Cache

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		logrus.Fatalf("failed to initialize cache: %v", err)
	}
}

func userCacheKey(id int64) string {
	return fmt.Sprintf("user:%d", id)
}

func SetUserCache(user *models.User) {
	Cache.Set(userCacheKey(user.ID), user, 1)
}

func GetUserCache(id int64) (*models.User, bool) {
	value, found := Cache.Get(userCacheKey(id))
	if !found {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
