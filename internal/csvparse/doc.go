// Package csvparse reads comma-separated text into an in-memory Table.
//
// Parsing happens in two passes per record. A LineReader rebuilds one
// logical line from the byte stream, keeping raw newlines that occur inside
// quotes, and SplitFields breaks that line into fields. Either '"' or '\''
// may quote a region; the character that opens a region is the only one that
// closes it, and doubling it inside the region yields a literal quote.
//
// The format is deliberately lenient. There are no bare-quote or
// unterminated-quote errors: an unbalanced quote simply runs to the end of
// the input. Rows may be wider or narrower than the header row; ReadTable
// stores them as found and leaves padding to the renderer.
package csvparse
