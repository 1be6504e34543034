package middleware

import (
	"testing"
	"time"
)

func TestUserRateLimiterBuckets(t *testing.T) {
	l := NewUserRateLimiter(1, 2)
	now := time.Now()

	if !l.allow("a", now) || !l.allow("a", now) {
		t.Fatal("burst should admit two requests")
	}
	if l.allow("a", now) {
		t.Fatal("third request in the same instant should be refused")
	}
	if !l.allow("b", now) {
		t.Fatal("buckets must be per key")
	}
	if !l.allow("a", now.Add(time.Second)) {
		t.Fatal("bucket should refill after a second")
	}
}

func TestUserRateLimiterEvict(t *testing.T) {
	l := NewUserRateLimiter(1, 1)
	now := time.Now()
	l.allow("old", now.Add(-time.Hour))
	l.allow("fresh", now)

	if n := l.Evict(time.Minute, now); n != 1 {
		t.Fatalf("evicted %d, want 1", n)
	}
	if _, ok := l.visitors["fresh"]; !ok {
		t.Error("fresh visitor evicted")
	}
}
