// Package fuzzy provides the low-level match cost model for search.
//
// Matching is a case-insensitive subsequence scan. Costs run from 0
// (exact match) toward 1 (barely usable): an exact match costs 0,
// contiguous substring matches stay below 0.3, and scattered
// subsequence matches start at 0.31 and grow with gap count and
// leading offset, discounted for word-boundary hits (start of token,
// after punctuation, camelCase transitions).
//
// The absolute values are an internal contract; callers should rely
// only on 0 meaning exact and lower meaning better.
package fuzzy
