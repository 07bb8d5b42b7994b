package retofa

var defaultParseConfig = parseConfig{
	singleCharTokens: false,
}

type parseConfig struct {
	singleCharTokens bool
}

// ParseOption functions optionally alter how patterns are parsed.
type ParseOption = func(*parseConfig)

// SingleCharTokens changes how runs of unquoted symbol characters are
// tokenised. If enabled, every symbol character is a symbol of its own, so
// "ab" means a followed by b. If disabled, consecutive symbol characters are
// grouped into one symbol, so "ab" is a single symbol and symbols must be
// separated with whitespace or operators. Quoted symbols are unaffected.
// Disabled by default.
func SingleCharTokens(enable bool) ParseOption {
	return func(cfg *parseConfig) {
		cfg.singleCharTokens = enable
	}
}
