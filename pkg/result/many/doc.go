// Package many reduces a slice of Results to a single Result, under two
// failure policies:
//
// - FromAll / ForEachResult / ForEachElement: all inputs must succeed; FromAll
//   reports only the failure count while the ForEach variants keep every
//   failure payload
// - FromAny: best effort, failures are dropped and the aggregate never fails
// - Reduce: a left fold that keeps folding past failing steps so every
//   failure is collected
//
// Output ordering always follows input ordering.
package many
