package ingest

// DefaultStopwords returns the built-in stopword list covering the
// catalog's site languages (English, Dutch, German). Callers can
// extend it via Tokenizer.AddStopword or replace it with a curated
// YAML list.
func DefaultStopwords() []string {
	return []string{
		// English
		"a", "an", "and", "are", "as", "at", "be", "by", "for", "from",
		"has", "have", "how", "in", "is", "it", "its", "of", "on", "or",
		"our", "that", "the", "their", "this", "to", "was", "we", "were",
		"what", "when", "where", "which", "will", "with", "you", "your",
		"all", "also", "any", "can", "do", "if", "into", "more", "most",
		"not", "so", "such", "than", "then", "there", "these", "they",
		// Dutch
		"de", "het", "een", "en", "van", "voor", "met", "bij", "naar",
		"onze", "wij", "uw", "dat", "dit", "zijn", "ook", "maar", "om",
		"aan", "door", "over", "niet", "wordt", "worden", "heeft",
		// German
		"der", "die", "das", "und", "mit", "für", "auf", "ein", "eine",
		"ist", "im", "am", "zu", "bei", "nach", "wir", "ihre", "sich",
		"auch", "oder", "als", "werden", "wird", "nicht", "durch",
	}
}
