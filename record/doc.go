/*Package record defines the genomic interval representation shared by the
  bed and gff codecs and by the interval-set algebra built on top of them.

  Coordinates are always stored 0-based half-open ([Start, End)) internally,
  matching BED convention; callers that parse 1-based inclusive formats (GFF3)
  convert on the way in and back out on the way out.
*/
package record
