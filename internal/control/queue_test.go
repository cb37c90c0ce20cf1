package control

import (
	"testing"

	"github.com/genricoloni/onair/internal/domain"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestQueue_SubmitAndReceive(t *testing.T) {
	q := NewQueue(zap.NewNop())

	if !q.Submit(domain.CommandStart) {
		t.Fatal("Submit should accept a command on an empty queue")
	}
	q.Submit(domain.CommandStop)

	if got := <-q.Commands(); got != domain.CommandStart {
		t.Errorf("expected start first, got %s", got)
	}
	if got := <-q.Commands(); got != domain.CommandStop {
		t.Errorf("expected stop second, got %s", got)
	}
}

func TestQueue_FullDropsWithSingleWarning(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	q := NewQueue(zap.New(core))

	for i := 0; i < defaultQueueSize; i++ {
		if !q.Submit(domain.CommandToggle) {
			t.Fatalf("command %d rejected before the queue was full", i)
		}
	}

	// Overflow several times in quick succession
	for i := 0; i < 5; i++ {
		if q.Submit(domain.CommandToggle) {
			t.Fatal("Submit should drop commands on a full queue")
		}
	}

	if n := logs.FilterMessage("Command queue full, dropping command").Len(); n != 1 {
		t.Errorf("expected one rate-limited warning, got %d", n)
	}
}
