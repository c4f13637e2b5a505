package utils

import (
	"errors"
	"sync"
	"time"
)

const (
	epoch             = int64(1577836800000) // 2020-01-01
	datacenterIDBits  = uint(5)
	workerIDBits      = uint(5)
	sequenceBits      = uint(12)
	maxDatacenterID   = int64(-1 ^ (-1 << datacenterIDBits))
	maxWorkerID       = int64(-1 ^ (-1 << workerIDBits))
	maxSequence       = int64(-1 ^ (-1 << sequenceBits))
	timestampShift    = sequenceBits + workerIDBits + datacenterIDBits
	datacenterIDShift = sequenceBits + workerIDBits
	workerIDShift     = sequenceBits
)

// Snowflake issues sortable unique ids: 41 bits of millis since epoch,
// 5+5 bits of node identity, 12 bits of per-milli sequence.
type Snowflake struct {
	mutex        sync.Mutex
	lastTime     int64
	workerID     int64
	datacenterID int64
	sequence     int64
}

func NewSnowflake(workerID, datacenterID int64) (*Snowflake, error) {
	if workerID < 0 || workerID > maxWorkerID {
		return nil, errors.New("worker ID out of range")
	}
	if datacenterID < 0 || datacenterID > maxDatacenterID {
		return nil, errors.New("datacenter ID out of range")
	}
	return &Snowflake{
		workerID:     workerID,
		datacenterID: datacenterID,
	}, nil
}

func (s *Snowflake) GenerateID() int64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	currentTime := time.Now().UnixNano() / 1e6
	if currentTime < s.lastTime {
		// clock went backwards, wait it out
		time.Sleep(time.Duration(s.lastTime-currentTime) * time.Millisecond)
		currentTime = time.Now().UnixNano() / 1e6
	}

	if currentTime == s.lastTime {
		s.sequence = (s.sequence + 1) & maxSequence
		if s.sequence == 0 {
			for currentTime <= s.lastTime {
				currentTime = time.Now().UnixNano() / 1e6
			}
		}
	} else {
		s.sequence = 0
	}

	s.lastTime = currentTime
	id := ((currentTime - epoch) << timestampShift) |
		(s.datacenterID << datacenterIDShift) |
		(s.workerID << workerIDShift) |
		s.sequence

	return id
}

var GlobalSnowflake *Snowflake

func InitSnowflake(workerID, datacenterID int64) error {
	var err error
	GlobalSnowflake, err = NewSnowflake(workerID, datacenterID)
	return err
}

// GenerateID returns an id from the global generator, initialising it with
// defaults on first use.
func GenerateID() int64 {
	if GlobalSnowflake == nil {
		_ = InitSnowflake(1, 1)
	}
	return GlobalSnowflake.GenerateID()
}
