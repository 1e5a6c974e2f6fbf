package observability

import (
	"context"
	"testing"
	"time"
)

type testConvertHooks struct {
	starts, completes int
}

func (h *testConvertHooks) OnConvertStart(context.Context, string, string) { h.starts++ }
func (h *testConvertHooks) OnConvertComplete(context.Context, string, int, time.Duration, error) {
	h.completes++
}

type testCacheHooks struct {
	hits, misses, sets int
}

func (h *testCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *testCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *testCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	c := NoopConvertHooks{}
	c.OnConvertStart(ctx, "smiles", "ethanol.smi")
	c.OnConvertComplete(ctx, "smiles", 3, time.Second, nil)

	r := NoopRenderHooks{}
	r.OnRenderStart(ctx, "svg")
	r.OnRenderComplete(ctx, "svg", 1024, time.Second, nil)

	ch := NoopCacheHooks{}
	ch.OnCacheHit(ctx, "convert")
	ch.OnCacheMiss(ctx, "render")
	ch.OnCacheSet(ctx, "render", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()
	t.Cleanup(Reset)

	// Verify defaults are noop
	if _, ok := Convert().(NoopConvertHooks); !ok {
		t.Error("Convert() should return NoopConvertHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customConvert := &testConvertHooks{}
	SetConvertHooks(customConvert)
	if Convert() != customConvert {
		t.Error("SetConvertHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Nil registration keeps the current hooks
	SetConvertHooks(nil)
	if Convert() != customConvert {
		t.Error("SetConvertHooks(nil) should keep current hooks")
	}

	// Events reach the custom hooks
	ctx := context.Background()
	Convert().OnConvertStart(ctx, "smiles", "x")
	Convert().OnConvertComplete(ctx, "smiles", 1, time.Millisecond, nil)
	if customConvert.starts != 1 || customConvert.completes != 1 {
		t.Errorf("custom hooks = %d starts / %d completes, want 1/1",
			customConvert.starts, customConvert.completes)
	}

	// Reset restores defaults
	Reset()
	if _, ok := Convert().(NoopConvertHooks); !ok {
		t.Error("Reset should restore NoopConvertHooks")
	}
}
