package broadcast

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingMember struct {
	id     string
	accept bool

	mutex  sync.Mutex
	events [][]byte
}

func newRecordingMember(id string) *recordingMember {
	return &recordingMember{id: id, accept: true}
}

func (m *recordingMember) ID() string {
	return m.id
}

func (m *recordingMember) Deliver(event []byte) bool {
	if !m.accept {
		return false
	}
	m.mutex.Lock()
	m.events = append(m.events, event)
	m.mutex.Unlock()
	return true
}

func (m *recordingMember) received() []string {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	out := make([]string, len(m.events))
	for i, e := range m.events {
		out[i] = string(e)
	}
	return out
}

func TestMemoryBusDeliversToAllGroupMembers(t *testing.T) {
	bus := NewMemoryBus()

	a := newRecordingMember("a")
	b := newRecordingMember("b")
	bus.Join("chat_42", a)
	bus.Join("chat_42", b)

	bus.Publish("chat_42", []byte("hello"))

	assert.Equal(t, []string{"hello"}, a.received())
	assert.Equal(t, []string{"hello"}, b.received())
}

func TestMemoryBusIsolatesGroups(t *testing.T) {
	bus := NewMemoryBus()

	a := newRecordingMember("a")
	b := newRecordingMember("b")
	bus.Join("chat_1", a)
	bus.Join("chat_2", b)

	bus.Publish("chat_1", []byte("only for room 1"))

	assert.Equal(t, []string{"only for room 1"}, a.received())
	assert.Empty(t, b.received())
}

func TestMemoryBusPreservesPublishOrder(t *testing.T) {
	bus := NewMemoryBus()

	m := newRecordingMember("m")
	bus.Join("admin_notifications", m)

	for i := 0; i < 10; i++ {
		bus.Publish("admin_notifications", []byte(fmt.Sprintf("event-%d", i)))
	}

	events := m.received()
	assert.Len(t, events, 10)
	for i, event := range events {
		assert.Equal(t, fmt.Sprintf("event-%d", i), event)
	}
}

func TestMemoryBusStopsDeliveryAfterLeave(t *testing.T) {
	bus := NewMemoryBus()

	m := newRecordingMember("m")
	bus.Join("chat_7", m)
	bus.Publish("chat_7", []byte("before"))

	bus.Leave("chat_7", "m")
	bus.Publish("chat_7", []byte("after"))

	assert.Equal(t, []string{"before"}, m.received())
}

func TestMemoryBusFailedMemberDoesNotBlockOthers(t *testing.T) {
	bus := NewMemoryBus()

	broken := newRecordingMember("broken")
	broken.accept = false
	healthy := newRecordingMember("healthy")
	bus.Join("chat_9", broken)
	bus.Join("chat_9", healthy)

	bus.Publish("chat_9", []byte("ping"))

	assert.Empty(t, broken.received())
	assert.Equal(t, []string{"ping"}, healthy.received())
}

func TestMemoryBusPublishToEmptyGroupIsNoop(t *testing.T) {
	bus := NewMemoryBus()

	assert.NotPanics(t, func() {
		bus.Publish("car_updates", []byte("nobody listens"))
	})
}

func TestMemoryBusConcurrentJoinPublishLeave(t *testing.T) {
	bus := NewMemoryBus()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			m := newRecordingMember(fmt.Sprintf("m-%d", n))
			bus.Join("chat_load", m)
			bus.Publish("chat_load", []byte("x"))
			bus.Leave("chat_load", m.ID())
		}(i)
	}
	wg.Wait()

	// All members left; a final publish must not reach anyone.
	late := newRecordingMember("late")
	bus.Join("chat_other", late)
	bus.Publish("chat_load", []byte("y"))
	assert.Empty(t, late.received())
}
