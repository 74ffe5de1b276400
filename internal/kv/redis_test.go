package kv

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := NewRedisStore(mr.Addr(), "", "")
	if err != nil {
		t.Fatalf("new redis store: %v", err)
	}
	ctx := context.Background()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := s.Set(ctx, "patients", `[{"id":"p1"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, ok, err := s.Get(ctx, "patients")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || val != `[{"id":"p1"}]` {
		t.Fatalf("unexpected value: ok=%v val=%q", ok, val)
	}

	if err := s.Delete(ctx, "patients"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "patients"); ok {
		t.Fatal("expected key gone after delete")
	}
}

func TestRedisStorePing(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := NewRedisStore(mr.Addr(), "", "")
	if err != nil {
		t.Fatalf("new redis store: %v", err)
	}

	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}

	mr.Close()
	if err := s.Ping(context.Background()); err == nil {
		t.Fatal("expected ping failure after server shutdown")
	}
}
