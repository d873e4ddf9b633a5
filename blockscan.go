package main

// blockOpeners are the tokens that increment the scanner's nesting counter;
// each must be matched by a later "end".
var blockOpeners = map[string]bool{
	"if": true, "times": true, "while": true, "for": true, "def": true,
}

// CollectBlock scans tokens[index:] for the body of a block opened by the
// caller, returning the body (not including its terminator), the index just
// past the consumed terminator, and which terminator token closed it
// ("end" or, when stopTokens permits it, a stop token). It is a pure
// function of (tokens, index, stopTokens) with no interpreter state, so it
// may be called re-entrantly from any evaluator context.
//
// If stopTokens is non-nil, scanning also halts at the first occurrence of a
// stop token at nesting level 0; that terminator is left unconsumed (the
// returned index points AT it, not past it) so the caller can inspect it.
func CollectBlock(tokens []string, index int, stopTokens map[string]bool) (body []string, next int, terminator string, err error) {
	nested := 0
	i := index
	for i < len(tokens) {
		tok := tokens[i]
		switch {
		case blockOpeners[tok]:
			nested++
			body = append(body, tok)
		case tok == "end":
			if nested == 0 {
				return body, i + 1, "end", nil
			}
			nested--
			body = append(body, tok)
		case stopTokens != nil && nested == 0 && stopTokens[tok]:
			return body, i, tok, nil
		default:
			body = append(body, tok)
		}
		i++
	}
	return nil, 0, "", InvalidOperationError{Op: "collect_block", Reason: "block not terminated with 'end'"}
}
