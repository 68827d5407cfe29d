// Package statistics accumulates per-hand returns and reports how precise
// their mean is.
package statistics

import (
	"fmt"
	"math"
)

// Statistics is a running summary of per-hand returns, where a return is the
// payout divided by the bet (0 for a loss, 1 for a push, 250 for a royal).
// Values are not stored, so summaries of any number of hands stay small.
type Statistics struct {
	Hands int
	Sum   float64
	SumSq float64 // sum of squares for variance
	Wins  int     // hands returning more than zero
	Max   float64 // largest single return
}

// Add records one hand's return
func (s *Statistics) Add(ret float64) {
	s.Hands++
	s.Sum += ret
	s.SumSq += ret * ret
	if ret > 0 {
		s.Wins++
	}
	if ret > s.Max {
		s.Max = ret
	}
}

// Merge folds another summary into s
func (s *Statistics) Merge(o Statistics) {
	s.Hands += o.Hands
	s.Sum += o.Sum
	s.SumSq += o.SumSq
	s.Wins += o.Wins
	s.Max = math.Max(s.Max, o.Max)
}

// Mean returns the average return per hand
func (s *Statistics) Mean() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.Sum / float64(s.Hands)
}

// Variance returns the sample variance of the returns
func (s *Statistics) Variance() float64 {
	if s.Hands < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.Hands)*mean*mean) / float64(s.Hands-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(math.Max(s.Variance(), 0))
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// WinRate returns the share of hands that paid anything
func (s *Statistics) WinRate() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Hands)
}

// Validate checks the summary is internally consistent
func (s *Statistics) Validate() error {
	if s.Hands <= 0 {
		return fmt.Errorf("invalid hands count: %d", s.Hands)
	}
	if s.Wins > s.Hands {
		return fmt.Errorf("wins (%d) exceed hands (%d)", s.Wins, s.Hands)
	}
	if s.Sum < 0 || s.SumSq < 0 {
		return fmt.Errorf("negative totals: sum=%.6f sumsq=%.6f", s.Sum, s.SumSq)
	}
	if s.Max > 0 && s.Wins == 0 {
		return fmt.Errorf("max return %.2f recorded without a win", s.Max)
	}
	return nil
}
