// Package zeta evaluates the Riemann-Siegel Z function on the critical line
// and locates the ordinates (imaginary parts) of the nontrivial zeros of the
// Riemann zeta function in increasing order.
//
// The package is the numerical collaborator behind the zeros provider. It is
// deterministic: for a fixed index and precision the same ordinate is
// returned across calls and across processes. Evaluation is double
// precision; the precision argument selects the root-refinement tolerance
// and is capped at what float64 can resolve. For ordinates beyond the
// Euler-Maclaurin range the achievable accuracy is further limited by the
// truncated Riemann-Siegel remainder.
package zeta
