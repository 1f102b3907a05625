// Package dispute contains the conflict-episode domain model: the Dispute
// aggregate (opened once per episode, assigned an arbitrator, resolved at
// most once) and the Outcome value object mapping verdicts to terminal order
// events.
package dispute
