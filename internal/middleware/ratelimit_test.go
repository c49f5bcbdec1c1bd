package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterExhaustsBucket(t *testing.T) {
	rl := NewRateLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d denied, want allowed", i)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("request after bucket exhaustion allowed, want denied")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first key denied")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("first key allowed twice")
	}
	if !rl.Allow("10.0.0.2") {
		t.Error("second key denied, buckets should be independent")
	}
}

func TestRateLimiterRefills(t *testing.T) {
	rl := NewRateLimiter(1, 10*time.Millisecond)

	if !rl.Allow("10.0.0.1") {
		t.Fatal("first request denied")
	}
	if rl.Allow("10.0.0.1") {
		t.Error("second request allowed before refill")
	}

	time.Sleep(25 * time.Millisecond)

	if !rl.Allow("10.0.0.1") {
		t.Error("request denied after refill interval")
	}
}
