/*Package gff implements a reproducible GFF3 codec for doRiNA's region
  files (all.gff, cds.gff, 3_utr.gff, 5_utr.gff, intron.gff, intergenic.gff).

  GFF3 coordinates are 1-based inclusive on the wire; Record stores them
  0-based half-open like every other package in this module, converting on
  the way in and back out on the way out (spec §3).
*/
package gff
