package viewstate_test

import (
	"strconv"
	"sync"
	"testing"
	"time"

	"frontdesk/shared/viewstate"

	"github.com/stretchr/testify/assert"
)

type guest struct {
	ID   string
	Name string
}

func newStore() *viewstate.Store[string, guest] {
	return viewstate.New(func(g guest) string { return g.ID })
}

func TestStore_Lifecycle(t *testing.T) {
	store := newStore()

	store.ReplaceAll([]guest{{ID: "U1", Name: "Jo"}, {ID: "U2", Name: "Ana"}})
	store.Insert(guest{ID: "U3", Name: "Kim"})

	assert.True(t, store.Update(guest{ID: "U2", Name: "Ana Silva"}))
	assert.False(t, store.Update(guest{ID: "U9"}))

	assert.True(t, store.Delete("U1"))
	assert.False(t, store.Delete("U1"))

	assert.Equal(t, []guest{{ID: "U2", Name: "Ana Silva"}, {ID: "U3", Name: "Kim"}}, store.List())
	assert.Equal(t, 2, store.Len())

	got, ok := store.Get("U3")
	assert.True(t, ok)
	assert.Equal(t, "Kim", got.Name)
}

func TestStore_InsertExistingKeepsPosition(t *testing.T) {
	store := newStore()

	store.Insert(guest{ID: "U1"})
	store.Insert(guest{ID: "U2"})
	store.Insert(guest{ID: "U1", Name: "again"})

	assert.Equal(t, []guest{{ID: "U1", Name: "again"}, {ID: "U2"}}, store.List())
}

func TestStore_ListIsCopy(t *testing.T) {
	store := newStore()
	store.Insert(guest{ID: "U1"})

	list := store.List()
	list[0].Name = "changed"

	got, _ := store.Get("U1")
	assert.Empty(t, got.Name)
}

func TestStore_Concurrent(t *testing.T) {
	store := newStore()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			store.Insert(guest{ID: strconv.Itoa(i)})
			store.List()
		}()
	}

	wg.Wait()

	assert.Equal(t, 50, store.Len())
}

func TestStore_IdleTimeout(t *testing.T) {
	var evicted []string

	store := newStore().WithIdleTimeout(200*time.Millisecond, func(g guest) {
		evicted = append(evicted, g.ID)
	})

	store.Insert(guest{ID: "U1"})
	store.Insert(guest{ID: "U2"})

	time.Sleep(120 * time.Millisecond)

	_, ok := store.Get("U2")
	assert.True(t, ok)

	time.Sleep(120 * time.Millisecond)

	_, ok = store.Get("U1")
	assert.False(t, ok)
	assert.Equal(t, []string{"U1"}, evicted)
	assert.Equal(t, []guest{{ID: "U2"}}, store.List())
}

func TestStore_ZeroIdleKeepsItems(t *testing.T) {
	store := newStore().WithIdleTimeout(0, nil)

	store.Insert(guest{ID: "U1"})
	time.Sleep(5 * time.Millisecond)

	assert.Equal(t, 1, store.Len())
}
