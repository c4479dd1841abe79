/*Package engine composes one doRiNA query: it resolves a region and its
  regulator sets (package regulator), computes each side's interval
  algebra (package algebra), combines the two sides, and re-joins the
  result against every selected regulator to produce Hit records
  (spec.md §4.5).

  A query progresses through a fixed state machine — Parsed, Resolved,
  SideComputed, Combined, Joined, Emitted — reported by Run.State.
  Each transition method returns an error without advancing the state on
  failure, so a failed query is left at its last successfully reached
  stage for diagnostics, the same shape as the teacher's BEDUnion tracking
  whether its last query was sequential.
*/
package engine
