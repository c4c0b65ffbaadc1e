package model

// QuoteEntry is one quote in a per-mode pool. Liked entries survive a
// pool refresh; unliked ones are replaceable.
type QuoteEntry struct {
	Text    string `json:"text"`
	IsLiked bool   `json:"isLiked"`
}

// QuotePools maps every mode to its bounded quote pool.
type QuotePools map[Mode][]QuoteEntry

// MaxQuotePoolSize caps each per-mode pool.
const MaxQuotePoolSize = 20
