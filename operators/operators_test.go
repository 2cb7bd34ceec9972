// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package operators_test

import (
	"errors"
	"testing"

	"github.com/born-ml/minitorch/operators"
)

// TestForwardAPI verifies the public forward operators.
func TestForwardAPI(t *testing.T) {
	if got := operators.Mul(2.0, 3.0); got != 6 {
		t.Errorf("Mul(2, 3) = %v, want 6", got)
	}
	if got := operators.Add(float32(2), 3); got != 5 {
		t.Errorf("Add(2, 3) = %v, want 5", got)
	}
	if got := operators.Sigmoid(0.0); got != 0.5 {
		t.Errorf("Sigmoid(0) = %v, want 0.5", got)
	}
	if got := operators.ReLU(-2.0); got != 0 {
		t.Errorf("ReLU(-2) = %v, want 0", got)
	}
	if !operators.IsClose(1.0, 1.001) {
		t.Error("IsClose(1, 1.001) = false, want true")
	}
	if got := operators.Max(1.0, 1.0); got != 1 {
		t.Errorf("Max(1, 1) = %v, want 1", got)
	}
}

// TestBackwardAPI verifies the public backward operators.
func TestBackwardAPI(t *testing.T) {
	if got := operators.ReLUBack(1.0, 5.0); got != 5 {
		t.Errorf("ReLUBack(1, 5) = %v, want 5", got)
	}
	if got := operators.ReLUBack(-1.0, 5.0); got != 0 {
		t.Errorf("ReLUBack(-1, 5) = %v, want 0", got)
	}
	if got, err := operators.InvBack(2.0, 1.0); err != nil || got != -0.25 {
		t.Errorf("InvBack(2, 1) = %v, %v, want -0.25", got, err)
	}
	if got, err := operators.LogBack(2.0, 1.0); err != nil || got != 0.5 {
		t.Errorf("LogBack(2, 1) = %v, %v, want 0.5", got, err)
	}
}

// TestDomainError verifies errors are matchable through the public API.
func TestDomainError(t *testing.T) {
	_, err := operators.Log(-1.0)
	if !errors.Is(err, operators.ErrDomain) {
		t.Fatalf("Log(-1) error = %v, want ErrDomain", err)
	}

	var de *operators.DomainError
	if !errors.As(err, &de) || de.Op != "log" {
		t.Errorf("Log(-1) error = %#v, want *DomainError{Op: log}", err)
	}

	if _, err := operators.Inv(0.0); !errors.Is(err, operators.ErrDomain) {
		t.Errorf("Inv(0) error = %v, want ErrDomain", err)
	}
}
