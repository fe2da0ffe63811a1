package repair

// Mojibake headings and their repaired forms, in the order they are applied.
// The strings are byte-for-byte literals; do not normalize them.
var defaultPairs = []Pair{
	{
		Name:        "core-features",
		Pattern:     "### ï¿½ æ ¸å¿ƒåŠŸèƒ½æ–‡æ¡£",
		Replacement: "### í³‹ æ ¸å¿ƒåŠŸèƒ½æ–‡æ¡£",
	},
	{
		Name:        "security-audit",
		Pattern:     "### ï¿½ å®‰å…¨ä¸å®¡è®¡æ–‡æ¡£",
		Replacement: "### í´ å®‰å…¨ä¸å®¡è®¡æ–‡æ¡£",
	},
	{
		Name:        "dev-tools",
		Pattern:     "### ï¿½ å¼€å‘å·¥å…·æ–‡æ¡£",
		Replacement: "### í»  å¼€å‘å·¥å…·æ–‡æ¡£",
	},
	{
		Name:        "ci-cd",
		Pattern:     "### ï¿½ CI/CDä¸æ„å»ºæ–‡æ¡£",
		Replacement: "### íº€ CI/CDä¸æ„å»ºæ–‡æ¡£",
	},
	{
		Name:        "dev-workflow",
		Pattern:     "### ï¿½ å®Œæ•´å¼€å‘æµç¨‹",
		Replacement: "### í³š å®Œæ•´å¼€å‘æµç¨‹",
	},
	{
		Name:        "doc-structure",
		Pattern:     "### ï¿½ æ–‡æ¡£ç»„ç»‡ç»“æ„",
		Replacement: "### í³‚ æ–‡æ¡£ç»„ç»‡ç»“æ„",
	},
	{
		Name:        "doc-usage",
		Pattern:     "### ï¿½ æ–‡æ¡£ä½¿ç”¨æŒ‡å—",
		Replacement: "### í¾¯ æ–‡æ¡£ä½¿ç”¨æŒ‡å—",
	},
	{
		Name:        "doc-highlights",
		Pattern:     "### ï¿½ æ–‡æ¡£ç‰¹ç‚¹",
		Replacement: "### í³– æ–‡æ¡£ç‰¹ç‚¹",
	},
}

// DefaultPairs returns a copy of the built-in README heading repairs.
func DefaultPairs() []Pair {
	pairs := make([]Pair, len(defaultPairs))
	copy(pairs, defaultPairs)
	return pairs
}
