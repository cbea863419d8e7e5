package statistics

// PassAtK computes the unbiased pass@k estimator: the probability that at
// least one of k attempts drawn without replacement from n recorded attempts
// (of which c passed) is a pass.
//
//	pass@k = 1 − C(n−c, k) / C(n, k)
//
// evaluated as a running product of ratios so large n never overflows a
// binomial coefficient. The result is always in [0, 1] for inputs satisfying
// 0 ≤ c ≤ n; inputs outside that range are not validated.
func PassAtK(n, c, k int) float64 {
	// Degenerate budgets first: with more draws than attempts, any pass at
	// all guarantees a hit.
	if k > n {
		if c > 0 {
			return 1.0
		}
		return 0.0
	}
	if c == 0 {
		return 0.0
	}
	if c >= n {
		return 1.0
	}
	if k <= 0 {
		return 0.0
	}
	// Sample larger than the failure pool: a pass is guaranteed.
	if k > n-c {
		return 1.0
	}

	// ∏_{i=0}^{k−1} (n−c−i)/(n−i) is the probability all k draws miss.
	missAll := 1.0
	for i := 0; i < k; i++ {
		missAll *= float64(n-c-i) / float64(n-i)
	}
	return 1.0 - missAll
}
