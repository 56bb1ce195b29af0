package objstore

import (
	"fmt"
	"sync/atomic"
)

// S3Usage keeps track of the number of cheap and expensive requests
type S3Usage struct {
	cheapRequests     atomic.Int64
	expensiveRequests atomic.Int64
}

// Cost per 1,000 requests in microdollars (1 dollar = 1,000,000 microdollars)
const (
	cheapCostPerThousand     = 400   // $0.0004 = 400 microdollars
	expensiveCostPerThousand = 5_000 // $0.005 = 5000 microdollars
)

// AddCheapRequest counts a GET or HEAD request.
func (s *S3Usage) AddCheapRequest() {
	s.cheapRequests.Add(1)
}

// AddExpensiveRequest counts a PUT request.
func (s *S3Usage) AddExpensiveRequest() {
	s.expensiveRequests.Add(1)
}

// Requests returns the cheap and expensive request counts.
func (s *S3Usage) Requests() (cheap, expensive int64) {
	return s.cheapRequests.Load(), s.expensiveRequests.Load()
}

// TotalCost calculates the total cost and returns it formatted as USD.
func (s *S3Usage) TotalCost() string {
	cheap, expensive := s.Requests()
	cheapCost := (cheap * cheapCostPerThousand) / 1000
	expensiveCost := (expensive * expensiveCostPerThousand) / 1000
	totalMicrodollars := cheapCost + expensiveCost

	dollars := totalMicrodollars / 1_000_000
	cents := (totalMicrodollars % 1_000_000) / 10_000
	remainderMicrodollars := (totalMicrodollars % 10_000) / 100

	if dollars > 0 || cents > 0 {
		return fmt.Sprintf("$%d.%02d", dollars, cents)
	}
	return fmt.Sprintf("$0.%04d", remainderMicrodollars)
}
