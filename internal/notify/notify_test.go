package notify

import "testing"

func TestCenterQueueAndDrain(t *testing.T) {
	c := NewCenter()

	c.Successf("guardado")
	c.Errorf("falló la red")
	c.Infof("3 sin calificar")
	c.Publish(Info, "") // vacío se ignora

	got := c.Drain()
	if len(got) != 3 {
		t.Fatalf("Drain returned %d notifications, want 3", len(got))
	}
	if got[0].Severity != Success || got[1].Severity != Error || got[2].Severity != Info {
		t.Fatalf("severities out of order: %+v", got)
	}

	if again := c.Drain(); len(again) != 0 {
		t.Fatalf("second Drain returned %d, want empty", len(again))
	}
}
