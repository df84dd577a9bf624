package catalog

import "strings"

// AppPaths maps spoken application aliases to the executable the executor
// should launch. Keys are the normalised forms produced by the correction
// stage.
var AppPaths = map[string]string{
	"chrome":       "chrome",
	"navigateur":   "chrome",
	"vscode":       "code",
	"code":         "code",
	"editeur":      "code",
	"terminal":     "wt",
	"powershell":   "powershell",
	"console":      "wt",
	"explorateur":  "explorer",
	"explorer":     "explorer",
	"discord":      "discord",
	"spotify":      "spotify",
	"steam":        "steam",
	"obs":          "obs64",
	"calculatrice": "calc",
	"notepad":      "notepad",
	"bloc notes":   "notepad",
	"paint":        "mspaint",
	"lm studio":    "lmstudio",
	"lmstudio":     "lmstudio",
	"word":         "winword",
	"excel":        "excel",
}

// SiteAliases maps spoken site names to full URLs. An unrecognised site is
// passed through ResolveSite unchanged so "va sur github.com" still works.
var SiteAliases = map[string]string{
	"google":      "https://www.google.com",
	"gmail":       "https://mail.google.com",
	"youtube":     "https://youtube.com",
	"github":      "https://github.com",
	"twitter":     "https://x.com",
	"reddit":      "https://reddit.com",
	"wikipedia":   "https://fr.wikipedia.org",
	"amazon":      "https://www.amazon.fr",
	"netflix":     "https://www.netflix.com",
	"twitch":      "https://www.twitch.tv",
	"tradingview": "https://www.tradingview.com",
	"mexc":        "https://www.mexc.com",
	"binance":     "https://www.binance.com",
	"coingecko":   "https://www.coingecko.com",
	"le bon coin": "https://www.leboncoin.fr",
	"leboncoin":   "https://www.leboncoin.fr",
	"linkedin":    "https://www.linkedin.com",
	"maps":        "https://maps.google.com",
	"drive":       "https://drive.google.com",
	"agenda":      "https://calendar.google.com",
	"calendrier":  "https://calendar.google.com",
	"meteo":       "https://www.meteofrance.com",
}

// ResolveApp maps a spoken application name to its executable. Unknown names
// are returned unchanged; the executor decides whether it can launch them.
func ResolveApp(spoken string) string {
	if exe, ok := AppPaths[strings.ToLower(strings.TrimSpace(spoken))]; ok {
		return exe
	}
	return spoken
}

// ResolveSite maps a spoken site name to a URL. A name that already looks
// like a URL or a domain is normalised to an https URL instead.
func ResolveSite(spoken string) string {
	s := strings.ToLower(strings.TrimSpace(spoken))
	if url, ok := SiteAliases[s]; ok {
		return url
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	if strings.Contains(s, ".") && !strings.Contains(s, " ") {
		return "https://" + s
	}
	// Not an alias and not a domain; hand it to a search instead of
	// guessing a TLD.
	return "https://www.google.com/search?q=" + strings.ReplaceAll(s, " ", "+")
}
