package broadcast

import (
	"sync"

	"github.com/Nekta161/autosalon/pkg/logger"
)

// MemoryBus fans out inside one process: a map of group name to membership
// set behind a RWMutex. Publish snapshots the membership, so a member
// joining concurrently may or may not see that event.
type MemoryBus struct {
	mutex  sync.RWMutex
	groups map[string]map[string]Member
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		groups: make(map[string]map[string]Member),
	}
}

func (b *MemoryBus) Join(group string, m Member) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	members, ok := b.groups[group]
	if !ok {
		members = make(map[string]Member)
		b.groups[group] = members
	}
	members[m.ID()] = m
}

func (b *MemoryBus) Leave(group string, memberID string) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	members, ok := b.groups[group]
	if !ok {
		return
	}
	delete(members, memberID)
	if len(members) == 0 {
		delete(b.groups, group)
	}
}

func (b *MemoryBus) Publish(group string, event []byte) {
	b.mutex.RLock()
	members := make([]Member, 0, len(b.groups[group]))
	for _, m := range b.groups[group] {
		members = append(members, m)
	}
	b.mutex.RUnlock()

	for _, m := range members {
		if !m.Deliver(event) {
			logger.Warn("broadcast: dropped event for member %s in group %s", m.ID(), group)
		}
	}
}
