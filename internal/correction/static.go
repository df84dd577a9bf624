package correction

// Rule maps a known mis-transcription to its canonical form. Category is
// informational; it groups rules in the learned-correction store.
type Rule struct {
	Wrong    string
	Right    string
	Category string
}

// StaticRules returns the hand-curated French STT confusion table in
// application order. Whisper-style transcribers mangle anglicisms and brand
// names in predictable ways; this table covers the recurring ones.
func StaticRules() []Rule {
	return []Rule{
		// Verbes mal conjugues ou colles
		{Wrong: "ouvres", Right: "ouvre", Category: "verbe"},
		{Wrong: "ouvert", Right: "ouvre", Category: "verbe"},
		{Wrong: "ouverts", Right: "ouvre", Category: "verbe"},
		{Wrong: "lances", Right: "lance", Category: "verbe"},
		{Wrong: "lancee", Right: "lance", Category: "verbe"},
		{Wrong: "cherches", Right: "cherche", Category: "verbe"},
		{Wrong: "recherches", Right: "recherche", Category: "verbe"},
		{Wrong: "va-sur", Right: "va sur", Category: "verbe"},
		{Wrong: "vasur", Right: "va sur", Category: "verbe"},
		{Wrong: "vas sur", Right: "va sur", Category: "verbe"},
		{Wrong: "demarres", Right: "demarre", Category: "verbe"},
		{Wrong: "navigues", Right: "navigue", Category: "verbe"},

		// Applications
		{Wrong: "crome", Right: "chrome", Category: "app"},
		{Wrong: "krome", Right: "chrome", Category: "app"},
		{Wrong: "crohm", Right: "chrome", Category: "app"},
		{Wrong: "crom", Right: "chrome", Category: "app"},
		{Wrong: "grome", Right: "chrome", Category: "app"},
		{Wrong: "chronme", Right: "chrome", Category: "app"},
		{Wrong: "vscod", Right: "vscode", Category: "app"},
		{Wrong: "vis code", Right: "vscode", Category: "app"},
		{Wrong: "visualstudiocode", Right: "vscode", Category: "app"},
		{Wrong: "el m studio", Right: "lm studio", Category: "app"},
		{Wrong: "aile m studio", Right: "lm studio", Category: "app"},
		{Wrong: "elle m studio", Right: "lm studio", Category: "app"},
		{Wrong: "elle emme studio", Right: "lm studio", Category: "app"},

		// Sites
		{Wrong: "gougueule", Right: "google", Category: "site"},
		{Wrong: "gougle", Right: "google", Category: "site"},
		{Wrong: "gogol", Right: "google", Category: "site"},
		{Wrong: "gogle", Right: "google", Category: "site"},
		{Wrong: "gemail", Right: "gmail", Category: "site"},
		{Wrong: "jimail", Right: "gmail", Category: "site"},
		{Wrong: "jmail", Right: "gmail", Category: "site"},
		{Wrong: "g mail", Right: "gmail", Category: "site"},
		{Wrong: "you tube", Right: "youtube", Category: "site"},
		{Wrong: "youtub", Right: "youtube", Category: "site"},
		{Wrong: "git hub", Right: "github", Category: "site"},
		{Wrong: "guithub", Right: "github", Category: "site"},
		{Wrong: "git-hub", Right: "github", Category: "site"},
		{Wrong: "tredingview", Right: "tradingview", Category: "site"},
		{Wrong: "traiding view", Right: "tradingview", Category: "site"},
		{Wrong: "trading vue", Right: "tradingview", Category: "site"},

		// Trading
		{Wrong: "breakaout", Right: "breakout", Category: "trading"},
		{Wrong: "brequaout", Right: "breakout", Category: "trading"},
		{Wrong: "brecaoutte", Right: "breakout", Category: "trading"},
		{Wrong: "snipeur", Right: "sniper", Category: "trading"},
		{Wrong: "snaiper", Right: "sniper", Category: "trading"},
		{Wrong: "scan", Right: "scanne", Category: "trading"},
		{Wrong: "skanne", Right: "scanne", Category: "trading"},
		{Wrong: "pipelaine", Right: "pipeline", Category: "trading"},
		{Wrong: "pailpelaine", Right: "pipeline", Category: "trading"},
		{Wrong: "consencus", Right: "consensus", Category: "trading"},
		{Wrong: "consansus", Right: "consensus", Category: "trading"},

		// Systeme
		{Wrong: "verouille", Right: "verrouille", Category: "systeme"},
		{Wrong: "verrouie", Right: "verrouille", Category: "systeme"},
		{Wrong: "eteint", Right: "eteins", Category: "systeme"},
		{Wrong: "etteint", Right: "eteins", Category: "systeme"},
		{Wrong: "redemarrre", Right: "redemarre", Category: "systeme"},
		{Wrong: "captur", Right: "capture", Category: "systeme"},

		// Mots francais courants
		{Wrong: "processuce", Right: "processus", Category: "mot"},
		{Wrong: "procaissus", Right: "processus", Category: "mot"},
		{Wrong: "sisteme", Right: "systeme", Category: "mot"},
		{Wrong: "sisthem", Right: "systeme", Category: "mot"},
		{Wrong: "cleussteur", Right: "cluster", Category: "mot"},
		{Wrong: "clustere", Right: "cluster", Category: "mot"},
		{Wrong: "telechargement", Right: "telechargements", Category: "mot"},
	}
}
