package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServer_RegisterUnregister_Concurrency(t *testing.T) {
	t.Parallel()

	count := 100
	s := &Server{
		clients:   make(map[string]*Client),
		semaphore: make(chan struct{}, count),
	}

	var wg sync.WaitGroup

	// Concurrent Register (each connection holds a semaphore slot)
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func(i int) {
			defer wg.Done()
			s.semaphore <- struct{}{}
			c := &Client{ID: fmt.Sprintf("c%d", i)}
			s.registerClient(c)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, count, s.GetOnlineCount())

	// Concurrent Unregister releases the slots
	wg.Add(count)
	for i := 0; i < count; i++ {
		go func(i int) {
			defer wg.Done()
			s.unregisterClient(&Client{ID: fmt.Sprintf("c%d", i)})
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 0, s.GetOnlineCount())
	assert.Len(t, s.semaphore, 0)
}

func TestServer_UnregisterUnknownClient(t *testing.T) {
	t.Parallel()

	s := &Server{
		clients:   make(map[string]*Client),
		semaphore: make(chan struct{}, 1),
	}

	// Unknown client must not drain the semaphore
	s.unregisterClient(&Client{ID: "ghost"})
	assert.Equal(t, 0, s.GetOnlineCount())
}

func TestServer_HandleHealth(t *testing.T) {
	t.Parallel()

	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
}
