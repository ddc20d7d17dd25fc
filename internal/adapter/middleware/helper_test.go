package middleware

import "testing"

func TestValidReqID(t *testing.T) {
	valid := []string{
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", // case-folded before matching
		"6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"  aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa  ", // trimmed
	}
	for _, id := range valid {
		if !validReqID(id) {
			t.Errorf("validReqID(%q) = false", id)
		}
	}

	invalid := []string{
		"",
		"short",
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",   // 31 chars
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", // 33 chars
		"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz",  // not hex
		"6ba7b810-9dad-61d1-80b4-00c04fd430c8", // version nibble out of range
	}
	for _, id := range invalid {
		if validReqID(id) {
			t.Errorf("validReqID(%q) = true", id)
		}
	}
}

func TestBuildKey(t *testing.T) {
	got := buildKey("POST", "/api/repayments", "7", "abc")
	want := "idemp:post:/api/repayments:7:abc"
	if got != want {
		t.Fatalf("buildKey = %q, want %q", got, want)
	}
}

func TestBodyHashStable(t *testing.T) {
	a := bodyHash([]byte(`{"amount":100}`))
	b := bodyHash([]byte(`{"amount":100}`))
	c := bodyHash([]byte(`{"amount":101}`))
	if a != b {
		t.Fatal("hash not deterministic")
	}
	if a == c {
		t.Fatal("different bodies hash equal")
	}
	if len(a) != 64 {
		t.Fatalf("hash length = %d", len(a))
	}
}
