package mw

import (
	"testing"
	"time"
)

func TestLimiterBurstThenRefill(t *testing.T) {
	l := newLimiter(RateLimitConfig{
		Burst:             2,
		RefillPerIPPerMin: 60, // one token per second
	})

	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		ok, _ := l.allow("192.0.2.1", now)
		if !ok {
			t.Fatalf("request %d within burst denied", i+1)
		}
	}

	ok, retry := l.allow("192.0.2.1", now)
	if ok {
		t.Fatal("request beyond burst allowed")
	}
	if retry < 1 {
		t.Errorf("retry-after = %d, want >= 1", retry)
	}

	// One second later a token has refilled.
	ok, _ = l.allow("192.0.2.1", now.Add(time.Second))
	if !ok {
		t.Error("request after refill denied")
	}
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	l := newLimiter(RateLimitConfig{
		Burst:             1,
		RefillPerIPPerMin: 1,
	})

	now := time.Now()
	if ok, _ := l.allow("192.0.2.1", now); !ok {
		t.Fatal("first client denied")
	}
	if ok, _ := l.allow("192.0.2.1", now); ok {
		t.Fatal("first client not exhausted")
	}
	if ok, _ := l.allow("192.0.2.2", now); !ok {
		t.Error("second client denied by first client's bucket")
	}
}

func TestLimiterSweepEvictsIdleBuckets(t *testing.T) {
	l := newLimiter(RateLimitConfig{
		Burst:             1,
		RefillPerIPPerMin: 1,
		SweepInterval:     time.Minute,
		IdleTTL:           time.Minute,
	})

	now := time.Now()
	l.allow("192.0.2.1", now)
	if len(l.buckets) != 1 {
		t.Fatalf("len(buckets) = %d, want 1", len(l.buckets))
	}

	l.sweepMaybe(now.Add(2 * time.Minute))
	if len(l.buckets) != 0 {
		t.Errorf("len(buckets) after sweep = %d, want 0", len(l.buckets))
	}
}
