// Package expert contains the expert-side domain model: verified
// Specialization records gating eligibility, the Candidate snapshot consumed
// by the matching service, derived Statistics owned by the statistics
// recompute operation, and per-order Ratings.
package expert
