package text

// stopWords is the English stop-word set. Counting happens on translated
// text, so the list follows the target language.
var stopWords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"ain": {}, "all": {}, "also": {}, "am": {}, "an": {}, "and": {}, "any": {},
	"are": {}, "aren": {}, "as": {}, "at": {}, "be": {}, "because": {},
	"been": {}, "before": {}, "being": {}, "below": {}, "between": {},
	"both": {}, "but": {}, "by": {}, "can": {}, "could": {}, "couldn": {},
	"did": {}, "didn": {}, "do": {}, "does": {}, "doesn": {}, "doing": {},
	"don": {}, "down": {}, "during": {}, "each": {}, "even": {}, "few": {},
	"for": {}, "from": {}, "further": {}, "had": {}, "hadn": {}, "has": {},
	"hasn": {}, "have": {}, "haven": {}, "having": {}, "he": {}, "her": {},
	"here": {}, "hers": {}, "herself": {}, "him": {}, "himself": {}, "his": {},
	"how": {}, "i": {}, "if": {}, "in": {}, "into": {}, "is": {}, "isn": {},
	"it": {}, "its": {}, "itself": {}, "just": {}, "let": {}, "ll": {},
	"may": {}, "me": {}, "might": {}, "more": {}, "most": {}, "must": {},
	"mustn": {}, "my": {}, "myself": {}, "needn": {}, "no": {}, "nor": {},
	"not": {}, "now": {}, "of": {}, "off": {}, "on": {}, "once": {},
	"only": {}, "or": {}, "other": {}, "our": {}, "ours": {}, "ourselves": {},
	"out": {}, "over": {}, "own": {}, "same": {}, "shan": {}, "she": {},
	"should": {}, "shouldn": {}, "so": {}, "some": {}, "such": {}, "than": {},
	"that": {}, "the": {}, "their": {}, "theirs": {}, "them": {},
	"themselves": {}, "then": {}, "there": {}, "these": {}, "they": {},
	"this": {}, "those": {}, "through": {}, "to": {}, "too": {}, "under": {},
	"until": {}, "up": {}, "us": {}, "very": {}, "was": {}, "wasn": {},
	"we": {}, "were": {}, "weren": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "who": {}, "whom": {}, "why": {}, "will": {},
	"with": {}, "won": {}, "would": {}, "wouldn": {}, "you": {}, "your": {},
	"yours": {}, "yourself": {}, "yourselves": {},
}

// IsStopWord reports whether word (already lower-cased) is filtered out of
// frequency counts.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}
