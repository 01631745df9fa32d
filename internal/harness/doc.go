// Package harness runs rollout scenarios described in YAML and compares
// their attempt traces against golden files.
//
// # Scenario Format
//
//	name: mercer_second_attempt
//	description: "First set is all ones, second all sixes"
//	method: CLASSIC          # default STANDARD
//	tolerance: 3             # default 500
//	dice: [1, 1, 1, ...]     # scripted faces, or
//	seed: 42                 # a seeded random source (exactly one of the two)
//	preset: mercer           # optional built-in preset, constraints prepended
//	constraints:
//	  - kind: NET_SCORE_CONSTRAINT
//	    limit: AT_LEAST
//	    value: 70
//	expect:
//	  found: true
//	  attempts: 2
//	  scores: [18, 18, 18, 18, 18, 18]
//
// Every expect field is optional, but at least one must be given.
//
// # Deterministic Testing
//
// Scenarios run with a fixed run ID (run_id, default "test-run-default") and
// either scripted or seeded dice, so the same scenario always produces a
// byte-identical trace. A scripted scenario whose dice run out fails with an
// error instead of crashing the run.
//
// Beyond the expect block, every run is checked for the search contract: an
// accepted set satisfies every constraint, a found result reports the
// accepting attempt, and an exhausted result reports tolerance+1.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/mercer.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if !result.Pass {
//	    for _, e := range result.Errors {
//	        log.Println(e)
//	    }
//	}
package harness
