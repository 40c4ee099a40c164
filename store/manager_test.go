package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/undivisible/gizzmoelectronics.com/store"
)

func TestManager_OneStorePerSession(t *testing.T) {
	m := store.NewManager(time.Hour)

	a := m.Get("session-a")
	b := m.Get("session-b")
	assert.NotSame(t, a, b)

	a.AddItem(widget())
	assert.Len(t, a.State().Items, 1)
	assert.Empty(t, b.State().Items)
}

func TestManager_SameSessionSameStore(t *testing.T) {
	m := store.NewManager(time.Hour)

	first := m.Get("session-a")
	first.AddItem(widget())

	again := m.Get("session-a")
	assert.Same(t, first, again)
	assert.Len(t, again.State().Items, 1)
	assert.Equal(t, 1, m.Len())
}
