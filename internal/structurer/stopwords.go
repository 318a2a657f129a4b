package structurer

// stopwords filtered out of keyword extraction
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "was": true,
	"were": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "this": true, "that": true, "these": true, "those": true,
	"with": true, "from": true, "into": true, "onto": true, "about": true,
	"after": true, "before": true, "during": true, "under": true,
	"over": true, "between": true, "through": true, "against": true,
	"will": true, "would": true, "shall": true, "should": true,
	"can": true, "could": true, "may": true, "might": true, "must": true,
	"not": true, "all": true, "any": true, "some": true, "there": true,
	"their": true, "they": true, "them": true, "his": true, "her": true,
	"its": true, "our": true, "your": true, "who": true, "whom": true,
	"which": true, "what": true, "when": true, "where": true, "why": true,
	"how": true, "also": true, "than": true, "then": true, "but": true,
	"because": true, "while": true, "out": true, "off": true, "near": true,
	"said": true, "says": true, "per": true, "new": true, "old": true,
	"one": true, "two": true, "more": true, "most": true, "other": true,
	"such": true, "only": true, "own": true, "same": true, "both": true,
	"each": true, "few": true, "very": true, "just": true, "now": true,
	"many": true, "made": true, "make": true, "get": true, "got": true,
}
