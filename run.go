package statemachine

// Symbols Splits s into single-character symbols, one per rune.
func Symbols(s string) []string {
	symbols := make([]string, 0, len(s))
	for _, r := range s {
		symbols = append(symbols, string(r))
	}
	return symbols
}

// Run Returns true if a accepts the string s, read one rune per symbol.
func Run(a Acceptor, s string) bool {
	return a.Test(Symbols(s))
}
