package cache

import (
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
)

const (
	lockExpiry = 3 * time.Second
	lockTries  = 8
)

// NewTargetMutex returns a distributed mutex scoped to one entity, used to
// serialize toggle writers for the same target across api replicas. The
// database transaction is the correctness backstop; the mutex keeps retry
// churn off the hot rows.
func NewTargetMutex(kind string, id int64) *redsync.Mutex {
	return RedSync.NewMutex(
		fmt.Sprintf("lock:%s:%d", kind, id),
		redsync.WithExpiry(lockExpiry),
		redsync.WithTries(lockTries),
	)
}
