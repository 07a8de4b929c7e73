package service

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput marks every validation failure of the projection engine.
var ErrInvalidInput = errors.New("invalid input")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// checkMoney rejects negative, non-finite or oversized amounts.
func checkMoney(name string, v, max float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid("%s must be a finite number", name)
	}
	if v < 0 {
		return invalid("%s must not be negative", name)
	}
	if v > max {
		return invalid("%s exceeds the maximum of $%.2f", name, max)
	}
	return nil
}

func checkPercent(name string, v, min, max float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid("%s must be a finite number", name)
	}
	if v < min || v > max {
		return invalid("%s must be between %.2f%% and %.2f%%", name, min, max)
	}
	return nil
}
