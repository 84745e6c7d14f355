// Package explorer implements the resumable boundary search over the
// digit-sum lattice: a breadth-first walk of the canonical octant
// (X ≥ Y ≥ 0) that stops after every bounded round and hands back a
// full-plane Snapshot.
//
// What
//
//   - New(target, initialMax) seeds the frontier with the origin.
//   - Each Step runs exactly one round: it dequeues up to the current batch
//     limit, classifies every point, enqueues the in-octant unvisited
//     neighbours of good points, and returns a Snapshot whose Good, Bad and
//     Waiting slices are already reflected to all eight symmetric images.
//   - The round that drains the frontier is final: its Snapshot has
//     Final == true, Waiting is empty, and Step reports no more work.
//     Any further Step returns ErrDone.
//   - Between rounds the explorer holds no resources. Abandoning it is safe,
//     and Checkpoint / Restore carry its Run State across process boundaries.
//
// Why
//
//   - The search is unbounded in principle and meant to be watched. Pulling
//     one round at a time lets a consumer pace, pause, or stop it.
//
// States
//
//	Yielding ──Step──▶ Running ──frontier non-empty──▶ Yielding
//	                          └─frontier empty───────▶ Done (terminal)
//
// Pacing
//
//   - FrontierPacing (default): first round processes 1 point, every later
//     round processes as many points as were queued when the previous round
//     stopped, giving roughly one BFS layer per round.
//   - FixedPacing(n): every round processes at most n points.
//   - DrainPacing: a single round processes everything.
//
// Pacing never changes which points are classified, only how the work is
// split into snapshots.
//
// Options
//
//   - WithPacing(p):      choose the batch policy.
//   - WithOracle(o):      share a digit-sum oracle between runs.
//   - WithLogger(l):      slog logger for per-round Debug and completion Info.
//   - WithOnEnqueue(fn):  hook called whenever a point joins the frontier.
//   - WithOnClassify(fn): hook called with every classified point.
//
// Errors
//
//   - ErrNegativeTarget / ErrNegativeMax: invalid construction arguments.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrDone: Step called after the final round.
//   - ErrCorruptCheckpoint: Restore received inconsistent state.
//
// Concurrency
//
//	An Explorer is single-owner and not safe for concurrent use. Independent
//	explorers may run in parallel and may share one digitsum.Oracle.
package explorer
