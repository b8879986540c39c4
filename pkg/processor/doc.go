// Package processor provides the strategy abstraction for post-processing
// created entities.
//
// A Processor is injected where variable behavior is needed; callers depend
// on the interface and pick the concrete strategy when wiring components:
//
//	var p processor.Processor[*User] = processor.NewPremium[*User](log)
//	_ = p.Process(ctx, user)
//
// The shipped strategies are logging stubs; real deployments substitute
// implementations with actual side effects behind the same interface.
package processor
