package base

import "testing"

func TestPortManager(t *testing.T) {
	pm := NewPortManager(5000, 2)

	first, err := pm.GetPort()
	if err != nil || first != 5000 {
		t.Fatalf("got %d, %v; want 5000", first, err)
	}
	second, err := pm.GetPort()
	if err != nil || second != 5001 {
		t.Fatalf("got %d, %v; want 5001", second, err)
	}
	if _, err := pm.GetPort(); err == nil {
		t.Fatal("expected exhausted range error")
	}

	pm.ReleasePort(first)
	again, err := pm.GetPort()
	if err != nil || again != first {
		t.Errorf("got %d, %v; want released port %d", again, err, first)
	}
}
