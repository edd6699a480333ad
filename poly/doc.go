// Package poly provides the polynomial model type shared by all spinopt
// solvers: a dictionary of canonical monomials with real coefficients over
// boolean ({0,1}) or spin ({−1,+1}) variables.
//
// A model is a mapping
//
//	{x0, x1, …} → coefficient
//
// where each key is a finite set of variable labels denoting the product
// of those variables. The empty key is the constant offset, length-1 keys
// are linear terms, and longer keys are interactions. Degree-2 models are
// the familiar QUBO (boolean) and QUSO/Ising (spin) forms; higher degrees
// are PUBO and PUSO.
//
// Canonicalization (“squashing”) happens exactly once, at construction:
//
//   - Spin domain: z² = 1, so a variable repeated in a key survives only
//     with odd multiplicity; survivors are sorted.
//   - Boolean domain: x² = x, so repeated variables deduplicate; sorted.
//
// Terms with equal canonical keys merge by summing coefficients, and zero
// coefficients are dropped, so no zero-valued term ever persists.
//
// Poly is an immutable value type. Arithmetic is exposed as free
// functions (Add, Scale) rather than methods that mutate, and every
// accessor returns defensive copies.
//
// The package also ships the exact boolean↔spin transcriptions
// (x = (1−z)/2) via ToSpin / ToBoolean, the matching state recodings
// (boolean 0 ↦ spin +1, 1 ↦ spin −1), value evaluators for both domains,
// and a bruteforce reference minimizer for small instances.
//
// Complexity:
//
//	– Construction: O(total key length × log k) for sorting each key.
//	– Value:        O(total key length).
//	– ToSpin/ToBoolean: O(Σ 2^|key|) — exponential in key degree only.
//	– MinimizeBruteforce: O(2^N × total key length); guarded by a cap.
package poly
