package persistence

import (
	"context"
	"testing"
	"time"
)

func TestPingNilReceiver(t *testing.T) {
	var r *Redis
	if err := r.Ping(context.Background()); err == nil {
		t.Fatalf("expected an error from a nil receiver")
	}
}

func TestPingNilClient(t *testing.T) {
	r := &Redis{}
	if err := r.Ping(context.Background()); err == nil {
		t.Fatalf("expected an error from an unconfigured client")
	}
}

func TestMarkRunNilClientIsNoOp(t *testing.T) {
	var r *Redis
	r.MarkRun(context.Background(), time.Now())

	r = &Redis{}
	r.MarkRun(context.Background(), time.Now())
}
