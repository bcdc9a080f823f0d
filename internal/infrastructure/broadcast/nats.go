package broadcast

import (
	"sync"

	"github.com/nats-io/nats.go"

	"github.com/Nekta161/autosalon/pkg/logger"
)

const subjectPrefix = "broadcast."

// NATSBus is the multi-process Bus backend: every publish goes through the
// broker, and each instance fans broker messages out to its local members.
// Core NATS subjects are used, not JetStream; like MemoryBus this stays a
// volatile primitive with no replay.
type NATSBus struct {
	nc *nats.Conn

	mutex  sync.Mutex
	groups map[string]map[string]Member
	subs   map[string]*nats.Subscription
}

func NewNATSBus(url string) (*NATSBus, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	return &NATSBus{
		nc:     nc,
		groups: make(map[string]map[string]Member),
		subs:   make(map[string]*nats.Subscription),
	}, nil
}

func (b *NATSBus) Close() {
	b.nc.Close()
}

func (b *NATSBus) Join(group string, m Member) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	members, ok := b.groups[group]
	if !ok {
		members = make(map[string]Member)
		b.groups[group] = members

		sub, err := b.nc.Subscribe(subjectPrefix+group, func(msg *nats.Msg) {
			b.deliverLocal(group, msg.Data)
		})
		if err != nil {
			logger.Error("broadcast: failed to subscribe to group %s: %v", group, err)
		} else {
			b.subs[group] = sub
		}
	}
	members[m.ID()] = m
}

func (b *NATSBus) Leave(group string, memberID string) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	members, ok := b.groups[group]
	if !ok {
		return
	}
	delete(members, memberID)
	if len(members) > 0 {
		return
	}

	delete(b.groups, group)
	if sub, ok := b.subs[group]; ok {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("broadcast: unsubscribe for group %s failed: %v", group, err)
		}
		delete(b.subs, group)
	}
}

func (b *NATSBus) Publish(group string, event []byte) {
	if err := b.nc.Publish(subjectPrefix+group, event); err != nil {
		logger.Error("broadcast: publish to group %s failed: %v", group, err)
	}
}

func (b *NATSBus) deliverLocal(group string, event []byte) {
	b.mutex.Lock()
	members := make([]Member, 0, len(b.groups[group]))
	for _, m := range b.groups[group] {
		members = append(members, m)
	}
	b.mutex.Unlock()

	for _, m := range members {
		if !m.Deliver(event) {
			logger.Warn("broadcast: dropped event for member %s in group %s", m.ID(), group)
		}
	}
}
