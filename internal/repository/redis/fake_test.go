package redis

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// fakeRedis implements redisAPI in memory.
type fakeRedis struct {
	mu     sync.Mutex
	values map[string][]byte
	lists  map[string][]string

	err error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{
		values: make(map[string][]byte),
		lists:  make(map[string][]string),
	}
}

func (f *fakeRedis) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.values[key]
	if !ok {
		return nil, redis.Nil
	}
	return v, nil
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value []byte) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.values[key]; ok {
		return false, nil
	}
	f.values[key] = value
	return true, nil
}

func (f *fakeRedis) SetAndPush(_ context.Context, key string, value []byte, listKey, member string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.values[key] = value
	f.lists[listKey] = append(f.lists[listKey], member)
	return nil
}

func (f *fakeRedis) LRange(_ context.Context, key string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]string(nil), f.lists[key]...), nil
}

func (f *fakeRedis) Update(_ context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	current, ok := f.values[key]
	if !ok {
		return redis.Nil
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	f.values[key] = next
	return nil
}
