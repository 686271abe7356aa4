// Package engine implements the orchestration loop that drives a run: a
// two-state machine (running/done) that repeatedly executes one pending
// agent per step until the queue drains. Each step dequeues the front
// identifier, resolves it against the registry, invokes the capability with
// a snapshot of the conversation so far, and appends its single reply.
//
// The loop is strictly sequential by design: an agent's reply must be
// visible in the log before the next agent runs, because later agents read
// the full prior conversation. Any failure aborts the run; a partial log is
// never surfaced as a successful result.
package engine
