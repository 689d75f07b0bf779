// Package topics holds the reference book's topic catalog and the
// Dispenser that prints topics to a console.
//
// A topic is a fixed block of German explanatory text about one C++
// language feature, embedded into the binary from content/*.txt. Showing a
// topic writes a header line followed by the body exactly as authored:
//
//	\n=== STL-Algorithmen ===\n
//	-> sort(): Sortiert einen Bereich.
//	   Beispiel: std::sort(v.begin(), v.end());
//
// Some topics are gated: after the text is written the dispenser reads one
// whitespace-delimited token from its input and discards it, giving a human
// reader time before the caller continues. The token's value is never used.
//
// The catalog is closed. Topics are addressed by ID, or by name through
// Lookup, which also accepts titles, 1-based positions and flag-style
// spellings such as --friend.
package topics
