/*Package catalog loads the on-disk genome/regulator data directory into an
  immutable in-memory index: which region files back which assembly, which
  experiment BEDs back which regulator id. Loading only indexes paths; it
  never parses BED/GFF content itself — that happens lazily when a query
  actually needs a stream (package record/bed/gff/algebra).
*/
package catalog
