// Package rollout searches for a set of six ability scores that satisfies a
// list of constraints, by bounded rejection sampling.
//
// ALGORITHM:
//
//  1. Validate the request and compile one AND predicate from its constraints
//     (done once, before any die is rolled)
//  2. For attempt 1..tolerance: roll a fresh set of six draws; if the
//     predicate accepts it, stop and report the attempt number
//  3. Otherwise report exhaustion: no set, Attempts == tolerance+1
//
// Exhaustion is an ordinary outcome, not an error. Callers tell the three
// cases apart from the return values alone:
//
//	res, err := searcher.Search(req)
//	switch {
//	case err != nil:   // rejected: malformed request
//	case res.Found:    // success on attempt res.Attempts
//	default:           // exhausted after res.Tolerance attempts
//	}
//
// Attempts are independent and identically distributed: nothing carries
// over between attempts except the compiled predicate, which is read-only.
// The search is single-threaded and synchronous. Independent searches may run
// concurrently provided each owns its own dice.Source.
package rollout
