package db

import (
	"sync"

	"github.com/dgraph-io/ristretto"
	"github.com/sirupsen/logrus"
)

// Report responses are cached keyed by endpoint + query parameters. Every
// cached key is registered so any write can drop the whole set at once,
// keeping cached reads equivalent to recomputing from the current records.
var (
	Cache           *ristretto.Cache
	reportCacheKeys = struct {
		sync.Mutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

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

func SetReportCache(key string, value interface{}) {
	if Cache == nil {
		return
	}
	reportCacheKeys.Lock()
	reportCacheKeys.m[key] = struct{}{}
	reportCacheKeys.Unlock()
	Cache.Set(key, value, 1)
}

func GetReportCache(key string) (interface{}, bool) {
	if Cache == nil {
		return nil, false
	}
	return Cache.Get(key)
}

// ClearReportCaches drops every cached report. Called after any transaction
// or budget write.
func ClearReportCaches() {
	if Cache == nil {
		return
	}
	reportCacheKeys.Lock()
	for key := range reportCacheKeys.m {
		Cache.Del(key)
	}
	reportCacheKeys.m = make(map[string]struct{})
	reportCacheKeys.Unlock()
}
