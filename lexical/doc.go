// Package lexical implements the sparse lexical relevance signal: a
// character n-gram TF-IDF vectorizer with fit/transform semantics and a
// persistable model so cached indexes can project queries with the
// vocabulary learned at build time.
package lexical
