package hash

import "testing"

func TestFingerprint(t *testing.T) {
	got := FingerprintString("abc")
	expected := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != expected {
		t.Fatalf("expected %s, got %s", expected, got)
	}
	if Fingerprint([]byte("abc")) != got {
		t.Fatalf("byte and string fingerprints differ")
	}
}
