package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
)

func newTestRedis(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	r, err := NewRedis(context.Background(), "redis://"+srv.Addr()+"/0", DefaultRedisPrefix)
	if err != nil {
		t.Fatalf("NewRedis: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r, srv
}

func TestRedisLoadSave(t *testing.T) {
	ctx := context.Background()
	r, srv := newTestRedis(t)

	if _, ok, err := r.Load(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key = %v %v", ok, err)
	}
	if err := r.Save(ctx, KeyPNG+"gender-pie", []byte("png"), time.Minute); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !srv.Exists(DefaultRedisPrefix + KeyPNG + "gender-pie") {
		t.Fatalf("key not stored with prefix")
	}
	data, ok, err := r.Load(ctx, KeyPNG+"gender-pie")
	if err != nil || !ok || string(data) != "png" {
		t.Fatalf("Load = %q %v %v", data, ok, err)
	}

	srv.FastForward(2 * time.Minute)
	if _, ok, _ := r.Load(ctx, KeyPNG+"gender-pie"); ok {
		t.Fatalf("key should have expired")
	}
}

func TestRedisPurge(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRedis(t)

	for _, k := range []string{KeyPNG + "a", KeyPNG + "b", KeyPage + "index"} {
		if err := r.Save(ctx, k, []byte("x"), time.Minute); err != nil {
			t.Fatalf("Save %s: %v", k, err)
		}
	}
	if err := r.Purge(ctx, KeyPNG); err != nil {
		t.Fatalf("Purge: %v", err)
	}
	if _, ok, _ := r.Load(ctx, KeyPNG+"a"); ok {
		t.Fatalf("png key survived purge")
	}
	if _, ok, _ := r.Load(ctx, KeyPage+"index"); !ok {
		t.Fatalf("page key removed by png purge")
	}
	if err := r.Purge(ctx, "nothing:"); err != nil {
		t.Fatalf("empty purge: %v", err)
	}
}

func TestRedisFetch(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRedis(t)

	render := func() ([]byte, error) { return []byte("html"), nil }
	if _, hit, err := Fetch(ctx, r, KeyPage+"index", time.Minute, render); err != nil || hit {
		t.Fatalf("first fetch hit=%v err=%v", hit, err)
	}
	if _, hit, err := Fetch(ctx, r, KeyPage+"index", time.Minute, render); err != nil || !hit {
		t.Fatalf("second fetch hit=%v err=%v", hit, err)
	}
}

func TestNewRedisErrors(t *testing.T) {
	if _, err := NewRedis(context.Background(), "not a url", DefaultRedisPrefix); err == nil {
		t.Fatalf("expected parse error")
	}
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := NewRedis(ctx, "redis://"+addr, DefaultRedisPrefix); err == nil {
		t.Fatalf("expected ping error on closed server")
	}
}
