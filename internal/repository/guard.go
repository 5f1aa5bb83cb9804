package repository

import (
	"slices"
	"sync"
)

// Guard hands out one mutex per collection (or scalar key). Every
// read-modify-write over a collection runs while holding its lock.
type Guard struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGuard() *Guard {
	return &Guard{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the locks of all named collections and returns the release
// func. Names are locked in sorted order so overlapping callers cannot deadlock.
func (g *Guard) Lock(names ...string) (unlock func()) {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	held := make([]*sync.Mutex, 0, len(sorted))
	for _, name := range sorted {
		l := g.lockFor(name)
		l.Lock()
		held = append(held, l)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}

func (g *Guard) lockFor(name string) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()
	l, ok := g.locks[name]
	if !ok {
		l = &sync.Mutex{}
		g.locks[name] = l
	}
	return l
}
