/*Package algebra implements the sorted-merge interval-set operators doRiNA's
  query engine composes: union, intersect (any/all semantics), subtract,
  slop (windowed expansion), and cat. All operators are pure functions of
  their inputs and produce deterministic output, breaking ties by
  (start asc, end asc, original stream index) as required by spec §4.4.

  Operators are generic over any record type that can report and replace its
  own coordinates (the Spanned constraint), so the same implementation backs
  both gff.Record region streams and bed.Record regulator streams.

  The per-chromosome sweep reuses the sequential-scan trick behind the
  teacher's interval.BEDUnion (its lastIdx/isSequential/lastPosPlus1 fields
  cache a single monotonically-advancing search position across a run of
  ascending queries): here that position becomes a sliding window of
  candidate B-records, since callers need to name which B record witnessed a
  hit rather than a single bool (see index.go).
*/
package algebra
