package operators

// Backward functions for reverse-mode differentiation.
//
// Each takes the forward input x and the upstream gradient d and returns
// d * f'(x), the contribution of f to the gradient of x.

// LogBack computes d/dx log(x) * d = d / x.
// Returns a *DomainError if x == 0.
func LogBack[T Float](x, d T) (T, error) {
	if x == 0 {
		return 0, domainError("log_back", x)
	}
	return d / x, nil
}

// InvBack computes d/dx (1/x) * d = -d / x².
// Returns a *DomainError if x == 0.
func InvBack[T Float](x, d T) (T, error) {
	if x == 0 {
		return 0, domainError("inv_back", x)
	}
	return -d / (x * x), nil
}

// ReLUBack passes d through when x ≥ 0 and blocks it otherwise.
// x == 0 is treated as the active branch.
func ReLUBack[T Float](x, d T) T {
	if x >= 0 {
		return d
	}
	return 0
}

// ExpBack computes d/dx e^x * d = d * e^x.
func ExpBack[T Float](x, d T) T {
	return d * exp(x)
}

// SigmoidBack computes d * σ(x) * (1 - σ(x)).
func SigmoidBack[T Float](x, d T) T {
	s := Sigmoid(x)
	return d * s * (1 - s)
}
