/*Package bed implements a reproducible BED3/6/9/12 codec: parsing into
  record.Interval-based records, and byte-for-byte re-emission.

  It also implements the BED6 projection (spec §4.1) that the regulator
  selector applies to every regulator file before the algebra operates on it,
  so downstream joins see a uniform six-column shape regardless of how wide
  the source BED was.
*/
package bed
