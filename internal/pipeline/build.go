package pipeline

import "github.com/shapestone/shape-vyper/internal/token"

// Build assembles the whitespace pipeline over raw scanner output:
// comments are stripped at the scanner/pipeline boundary, then ten
// filters run in sequence turning raw whitespace into structure.
// The result is a Stream yielding only identifiers, keywords, literals,
// operators/punctuation, and the structural INDENT/DEDENT/ENDSTMT tokens.
func Build(source string, scanned []token.Token) Stream {
	var s Stream = NewBase(scanned)
	s = StripComments(s)
	s = AnnotatePosition(source, s)     // 1. annotate_columns
	s = RemoveDoubleNewline(s)          // 2. remove_double(NEWLINE)
	s = AddLastNewline(s)               // 3. add_last(NEWLINE)
	s = IndentTracker(source, s)        // 4. indent_tracker
	s = DiscardStrayWhitespace(s)       // 5. discard SPACE and stray TAB
	s = CollapseUnnecessaryMultiline(source, s) // 6. collapse_unnecessary_multiline
	s = SkipBeginNewline(s)             // 7. skip_begin(NEWLINE)
	s = SkipAfter(s)                    // 8. skip_after(NEWLINE, {;, ',', DOCSTR})
	s = SubstituteNewline(s)            // 9. substitute(NEWLINE -> ENDSTMT)
	s = SwapDocstrIndent(s)             // 10. swap_order(DOCSTR, INDENT)
	return s
}
