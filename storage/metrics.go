package storage

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

var (
	bytesWritten = metrics.NewCounter("storage_bytes_written_total")
	bytesRead    = metrics.NewCounter("storage_bytes_read_total")
)

func recordOperation(op string, r OperationResult) {
	result := "success"
	if !r.Success {
		result = "failure"
	}
	metrics.GetOrCreateCounter(fmt.Sprintf(`storage_operations_total{op=%q,result=%q}`, op, result)).Inc()
}
