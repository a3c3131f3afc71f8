package metrics_test

import (
	"testing"
	"time"

	"github.com/AndrewDonelson/memoize/internal/metrics"
)

func TestNoop_AllMethods(t *testing.T) {
	n := metrics.Noop{}
	n.RecordHit("memory")
	n.RecordMiss("redis")
	n.RecordLatency("memory", "get", 100*time.Millisecond)
	n.RecordError("redis", "set")
}
