package ports

// SizeParser parses human-readable size specs (like "10MB" or "1.5GB") into bytes.
type SizeParser interface {
	Parse(spec string) (int64, error)
}
