/*Package regulator resolves a regulator name to a filtered, BED6-projected
  interval stream (spec.md §4.3). A name is either a direct path to a
  custom BED file, or a catalog lookup by (species, assembly, id) whose
  records are then narrowed by the <prefix>_<predicate> name-filter rule.
*/
package regulator
