// Package storage is the demo respserver's key/value backend: a
// concurrent string map with TTL expiry, driving the example server
// that exercises the resp codec over a real socket.
package storage

import (
	"sort"
	"sync"
	"time"
)

// expiryQueue tracks which keys are due to expire, kept sorted by
// expiry time so the sweep can stop at the first key that isn't due
// yet. It is the teacher's storage.ExpiryQueue, generalized with a
// stop channel so the sweep goroutine can be shut down instead of
// leaking for the process lifetime.
type expiryQueue struct {
	mu         sync.Mutex
	expiresAt  map[string]int64
	sortedKeys []string
	expired    chan string
	stop       chan struct{}
}

func newExpiryQueue() *expiryQueue {
	q := &expiryQueue{
		expiresAt: make(map[string]int64),
		expired:   make(chan string),
		stop:      make(chan struct{}),
	}
	go q.sweep()
	return q
}

// insert schedules key to expire at the given absolute unix time,
// keeping sortedKeys ordered so sweep can break out early.
func (q *expiryQueue) insert(key string, expiresAt int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, scheduled := q.expiresAt[key]; scheduled {
		for i, k := range q.sortedKeys {
			if k == key {
				q.sortedKeys = append(q.sortedKeys[:i], q.sortedKeys[i+1:]...)
				break
			}
		}
	}
	q.expiresAt[key] = expiresAt
	keys := q.sortedKeys
	i := sort.Search(len(keys), func(i int) bool { return q.expiresAt[keys[i]] >= expiresAt })
	keys = append(keys, "")
	copy(keys[i+1:], keys[i:])
	keys[i] = key
	q.sortedKeys = keys
}

// cancel removes key from the schedule, e.g. because it was deleted or
// overwritten without a new TTL.
func (q *expiryQueue) cancel(key string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.expiresAt[key]; !ok {
		return
	}
	delete(q.expiresAt, key)
	for i, k := range q.sortedKeys {
		if k == key {
			q.sortedKeys = append(q.sortedKeys[:i], q.sortedKeys[i+1:]...)
			break
		}
	}
}

func (q *expiryQueue) sweep() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-q.stop:
			return
		case <-ticker.C:
			q.fireDue(time.Now().Unix())
		}
	}
}

func (q *expiryQueue) fireDue(now int64) {
	q.mu.Lock()
	due := due(q.sortedKeys, q.expiresAt, now)
	if len(due) > 0 {
		q.sortedKeys = q.sortedKeys[len(due):]
		for _, k := range due {
			delete(q.expiresAt, k)
		}
	}
	q.mu.Unlock()

	for _, k := range due {
		select {
		case q.expired <- k:
		case <-q.stop:
			return
		}
	}
}

func due(sortedKeys []string, expiresAt map[string]int64, now int64) []string {
	i := 0
	for ; i < len(sortedKeys); i++ {
		if expiresAt[sortedKeys[i]] > now {
			break
		}
	}
	out := make([]string, i)
	copy(out, sortedKeys[:i])
	return out
}

func (q *expiryQueue) close() {
	close(q.stop)
}
