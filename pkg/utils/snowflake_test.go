package utils

import (
	"sync"
	"testing"
)

func TestSnowflakeUniqueness(t *testing.T) {
	sf, err := NewSnowflake(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	const n = 10000
	seen := make(map[int64]bool, n)
	for i := 0; i < n; i++ {
		id := sf.GenerateID()
		if seen[id] {
			t.Fatalf("duplicate id %d at iteration %d", id, i)
		}
		seen[id] = true
	}
}

func TestSnowflakeMonotonic(t *testing.T) {
	sf, err := NewSnowflake(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	prev := sf.GenerateID()
	for i := 0; i < 1000; i++ {
		id := sf.GenerateID()
		if id <= prev {
			t.Fatalf("ids not increasing: %d then %d", prev, id)
		}
		prev = id
	}
}

func TestSnowflakeConcurrent(t *testing.T) {
	sf, err := NewSnowflake(4, 5)
	if err != nil {
		t.Fatal(err)
	}
	const workers = 8
	const perWorker = 2000

	var mu sync.Mutex
	seen := make(map[int64]bool, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]int64, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				ids = append(ids, sf.GenerateID())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range ids {
				if seen[id] {
					t.Errorf("duplicate id %d across goroutines", id)
					return
				}
				seen[id] = true
			}
		}()
	}
	wg.Wait()
}

func TestSnowflakeRejectsBadNodeIds(t *testing.T) {
	if _, err := NewSnowflake(32, 0); err == nil {
		t.Error("worker id 32 should be rejected")
	}
	if _, err := NewSnowflake(0, 32); err == nil {
		t.Error("datacenter id 32 should be rejected")
	}
	if _, err := NewSnowflake(-1, 0); err == nil {
		t.Error("negative worker id should be rejected")
	}
}
