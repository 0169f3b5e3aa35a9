package ws

import (
	"encoding/json"
	"testing"
	"time"

	"linha-viva/pkg/logger"
)

func TestHub_PublishQueuesEvent(t *testing.T) {
	h := NewHub(logger.Discard())

	h.Publish("stock_update", "transaction_created", map[string]int{"balance": 3}, "saida registrada")

	select {
	case raw := <-h.Broadcast:
		var ev Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if ev.Type != "stock_update" || ev.Action != "transaction_created" || ev.Timestamp == 0 {
			t.Fatalf("unexpected event %+v", ev)
		}
	default:
		t.Fatalf("expected queued event")
	}
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	h := NewHub(logger.Discard())
	for i := 0; i < cap(h.Broadcast)+10; i++ {
		h.Publish("sync", "status", nil, "")
	}
	if len(h.Broadcast) != cap(h.Broadcast) {
		t.Fatalf("expected full queue, got %d", len(h.Broadcast))
	}
}

func TestHub_StopIsIdempotent(t *testing.T) {
	h := NewHub(logger.Discard())
	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()
	h.Stop()
	h.Stop()
	<-done
}

func TestHub_JoinLeaveAfterStop(t *testing.T) {
	h := NewHub(logger.Discard())
	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()
	h.Stop()
	<-done

	returned := make(chan bool, 1)
	go func() {
		ok := h.Join(nil)
		h.Leave(nil)
		returned <- ok
	}()

	select {
	case ok := <-returned:
		if ok {
			t.Fatalf("expected Join to refuse a stopped hub")
		}
	case <-time.After(time.Second):
		t.Fatalf("Join/Leave blocked after Stop")
	}
}
