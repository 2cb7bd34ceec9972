package operators

// Sigmoid computes the logistic function σ(a) = 1 / (1 + e^-a).
//
// The formula is split on the sign of a so that e^x is only ever evaluated
// for x ≤ 0:
//
//	a ≥ 0:  1 / (1 + e^-a)
//	a < 0:  e^a / (1 + e^a)
func Sigmoid[T Float](a T) T {
	if a >= 0 {
		return 1 / (1 + exp(-a))
	}
	e := exp(a)
	return e / (1 + e)
}

// ReLU returns max(0, a).
func ReLU[T Float](a T) T {
	return Max(0, a)
}

// Exp returns e^a.
func Exp[T Float](a T) T {
	return exp(a)
}

// Log returns the natural logarithm of a.
// Returns a *DomainError if a ≤ 0.
func Log[T Float](a T) (T, error) {
	if a <= 0 {
		return 0, domainError("log", a)
	}
	return log(a), nil
}

// Inv returns 1 / a.
// Returns a *DomainError if a == 0.
func Inv[T Float](a T) (T, error) {
	if a == 0 {
		return 0, domainError("inv", a)
	}
	return 1 / a, nil
}
