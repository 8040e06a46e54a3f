package realtime

import (
	"sync"
	"testing"
)

type fakeClient struct {
	mu   sync.Mutex
	msgs [][]byte
}

func (f *fakeClient) Send(message []byte) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, message)
	return true
}

func (f *fakeClient) Close() {}

func (f *fakeClient) received() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.msgs)
}

func TestHub_RegisterBroadcastUnregister(t *testing.T) {
	h := &Hub{clients: make(map[Client]struct{})}

	a := &fakeClient{}
	b := &fakeClient{}
	h.Register(a)
	h.Register(b)
	if h.Count() != 2 {
		t.Fatalf("expected Count=2, got %d", h.Count())
	}

	h.Broadcast([]byte(`{"type":"programmer_created"}`))
	if a.received() != 1 || b.received() != 1 {
		t.Fatalf("expected both clients to receive the broadcast, got a=%d b=%d", a.received(), b.received())
	}

	h.Unregister(a)
	if h.Count() != 1 {
		t.Fatalf("expected Count=1 after unregister, got %d", h.Count())
	}

	h.Broadcast([]byte(`{"type":"programmer_deleted"}`))
	if a.received() != 1 {
		t.Fatalf("expected unregistered client to stop receiving, got %d", a.received())
	}
	if b.received() != 2 {
		t.Fatalf("expected remaining client to keep receiving, got %d", b.received())
	}
}

func TestHub_ConcurrentBroadcast(t *testing.T) {
	h := &Hub{clients: make(map[Client]struct{})}
	c := &fakeClient{}
	h.Register(c)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Broadcast([]byte("evt"))
		}()
	}
	wg.Wait()

	if c.received() != 20 {
		t.Fatalf("expected 20 broadcasts, got %d", c.received())
	}
}
