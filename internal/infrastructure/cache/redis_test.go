package cache

import "testing"

func TestOpenRedis_Unreachable(t *testing.T) {
	// nothing listens on this port; Ping must fail fast
	if _, err := OpenRedis("127.0.0.1:1", 0); err == nil {
		t.Fatal("expected connection error")
	}
}
