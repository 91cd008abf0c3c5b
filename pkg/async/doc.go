// Package async provides a tiny generic Future for running one computation in
// the background and collecting its result later.
//
// Async starts the supplied function in its own goroutine and immediately
// returns a *Future. Callers wait with Await, wait with a bound using
// AwaitContext, select on Done, or poll with IsComplete. A Future completes
// exactly once.
//
// # Usage
//
//	future := async.Async(ctx, url, func(ctx context.Context, url string) ([]byte, error) {
//	    return fetch(ctx, url)
//	})
//	// ... do other work ...
//	body, err := future.Await()
//
// If the context is already canceled when the goroutine starts, the function
// is skipped and the Future completes with the context error. Cancellation
// after the function started is the function's own business.
package async
