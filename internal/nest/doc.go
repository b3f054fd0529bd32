// Package nest places scalar values into a nested document by dotted path.
//
// A header such as "address.city" or "skills.0" is split on '.' into
// segments. A segment made only of ASCII digits that fits an int32 is a
// list index; anything else is a map key. Containers along the path are created on first use,
// and the kind of container at each step is decided by the shape of the
// segment that addresses it, never by what the slot already holds.
//
//	"address.city" = "Tokyo"  ->  {"address": {"city": "Tokyo"}}
//	"skills.2"     = "go"     ->  {"skills": [null, null, "go"]}
//	"jobs.0.title" = "dev"    ->  {"jobs": [{"title": "dev"}]}
//
// # Conflicting shapes
//
// If two headers of one record disagree about a slot ("a.b" and then
// "a.0"), the later header wins: the slot is replaced by a fresh container
// of the kind the later segment asks for and whatever it held is dropped.
// A final segment always overwrites its slot.
//
// # Index limit
//
// A Builder refuses paths whose largest index exceeds its MaxIndex and
// reports that from Set. The column is dropped as a whole; the digit
// segment is never reread as a map key.
//
// # Top-level indexes
//
// The record root is always a map. An index segment addressed at the root
// ("0", "0.x") stores a list under the segment's own text, so "0" = v gives
// {"0": [v]}.
package nest
