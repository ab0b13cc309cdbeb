package service

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/returnslabs/returns-analytics-api/config"
	"github.com/returnslabs/returns-analytics-api/dao"
)

// ErrDatabaseNotConfigured is returned on every data path when no storage
// backend has been configured.
var ErrDatabaseNotConfigured = errors.New("database not configured")

// ReturnsService contains the DAO for db access, plus the random source used
// for seeding and the clock used for window calculations. Both are injected so
// tests can reproduce fixture generation and pin window boundaries.
type ReturnsService struct {
	DAO    dao.DAO
	Config config.Config
	Rand   *rand.Rand
	Now    func() time.Time
}

func (service *ReturnsService) now() time.Time {
	if service.Now != nil {
		return service.Now().UTC()
	}
	return time.Now().UTC()
}

var randMtx sync.Mutex

// rng derives a fresh generator for a single seeding run. The injected source
// is only touched under the lock; math/rand.Rand is not safe for concurrent
// use and seed requests may run in parallel.
func (service *ReturnsService) rng() *rand.Rand {
	randMtx.Lock()
	defer randMtx.Unlock()

	if service.Rand == nil {
		service.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(service.Rand.Int63()))
}
