// Package flow implements the step-chain execution core: an ordered
// composition of named steps threaded over an immutable navigation state.
//
// The package is built around three core concepts:
//
//  1. Context: the per-step-derived bundle of session handles, focal
//     element or collection, cross-step item store, and failure slot
//  2. Step: a single named, composable transformation over a Context
//  3. Chain: an ordered sequence of Steps executed with
//     short-circuit-on-failure semantics
//
// # Failure model
//
// A Chain never raises: the first failure produced by any step is recorded
// in the carried Context and every remaining step is skipped. Panics inside
// a step body are converted at a single point in the execution loop, so the
// contract "steps never let failures escape Run" is centralized. Callers
// inspect the final Context with HasFailure and Failure.
//
// # Concurrency
//
// One Context value flows through exactly one in-flight step at a time, so
// the core needs no locking. The cross-step item store is nevertheless safe
// for concurrent use, and RunAll executes independent chains over distinct
// sessions concurrently with fail-fast cancellation.
//
// # Example
//
//	c := flow.NewContext(sess, flow.WithTrace(sink))
//	result := flow.NewChain(
//	    web.Goto("https://example.com"),
//	    web.Find("#login"),
//	    web.Click(),
//	).Run(ctx, c)
//	if result.HasFailure() {
//	    log.Fatal(result.Failure())
//	}
package flow
