package history

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poemview/internal/eventbus"
	"poemview/internal/store"
)

func TestRecorderStoresLastPage(t *testing.T) {
	bus := eventbus.New(nil)
	st := store.NewMemoryStore()

	NewRecorder(bus, st, nil)
	bus.Publish(eventbus.PageChangedEvent{From: 1, To: 2})
	bus.Publish(eventbus.PageChangedEvent{From: 2, To: 6})
	bus.Close()

	page, ok := LastPage(st)
	require.True(t, ok)
	assert.Equal(t, 6, page)
}

func TestStopUnsubscribes(t *testing.T) {
	bus := eventbus.New(nil)
	st := store.NewMemoryStore()

	r := NewRecorder(bus, st, nil)
	r.Stop()
	bus.Publish(eventbus.PageChangedEvent{From: 1, To: 2})
	bus.Close()

	_, ok := LastPage(st)
	assert.False(t, ok)
}

func TestLastPageIgnoresGarbage(t *testing.T) {
	st := store.NewMemoryStore()

	_, ok := LastPage(st)
	assert.False(t, ok)

	require.NoError(t, st.Set(KeyLastPage, "zero"))
	_, ok = LastPage(st)
	assert.False(t, ok)

	require.NoError(t, st.Set(KeyLastPage, "0"))
	_, ok = LastPage(st)
	assert.False(t, ok)
}

type readOnlyStore struct {
	store.Store
}

func (readOnlyStore) Set(string, string) error { return errors.New("read-only file system") }

func TestRecordFailurePublishesError(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	errs := make(chan eventbus.ErrorEvent, 1)
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.ErrorEvent); ok {
			errs <- ev
		}
	})

	NewRecorder(bus, readOnlyStore{store.NewMemoryStore()}, nil)
	bus.Publish(eventbus.PageChangedEvent{From: 1, To: 2})

	select {
	case ev := <-errs:
		assert.Equal(t, "could not save reading position", ev.Message)
		assert.EqualError(t, ev.Err, "read-only file system")
	case <-time.After(2 * time.Second):
		t.Fatal("no error event published")
	}
}
