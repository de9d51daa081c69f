package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Connect hooks
	c := NoopConnectHooks{}
	c.OnConnect("Frame 1", "B1", 4, time.Millisecond)
	c.OnDisconnect("Frame 1", "B1", 4)
	c.OnCrossing("Frame 1", "VB1", "B1")

	// IO hooks
	io := NoopIOHooks{}
	io.OnRead(ctx, "json", 12, time.Millisecond, nil)
	io.OnWrite(ctx, "yaml", 12, time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Connect().(NoopConnectHooks); !ok {
		t.Error("Connect() should return NoopConnectHooks by default")
	}
	if _, ok := IO().(NoopIOHooks); !ok {
		t.Error("IO() should return NoopIOHooks by default")
	}

	// Set custom hooks
	customConnect := &testConnectHooks{}
	SetConnectHooks(customConnect)
	if Connect() != customConnect {
		t.Error("SetConnectHooks should set custom hooks")
	}

	customIO := &testIOHooks{}
	SetIOHooks(customIO)
	if IO() != customIO {
		t.Error("SetIOHooks should set custom hooks")
	}

	Connect().OnCrossing("F", "A", "B")
	if customConnect.crossings != 1 {
		t.Errorf("crossings = %d, want 1", customConnect.crossings)
	}

	// Reset and verify
	Reset()
	if _, ok := Connect().(NoopConnectHooks); !ok {
		t.Error("Reset() should restore NoopConnectHooks")
	}
	if _, ok := IO().(NoopIOHooks); !ok {
		t.Error("Reset() should restore NoopIOHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testConnectHooks{}
	SetConnectHooks(custom)

	// Setting nil should be ignored
	SetConnectHooks(nil)

	if Connect() != custom {
		t.Error("SetConnectHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testConnectHooks struct {
	NoopConnectHooks
	crossings int
}

func (h *testConnectHooks) OnCrossing(string, string, string) { h.crossings++ }

type testIOHooks struct {
	NoopIOHooks
	reads int
}
