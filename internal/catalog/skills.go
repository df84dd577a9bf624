package catalog

// BuiltinSkills is the built-in French skill catalog. Each skill is a named
// multi-step pipeline triggered by literal phrases.
func BuiltinSkills() []SkillEntry {
	return []SkillEntry{
		{
			Name:        "rapport_matin",
			Category:    "routine",
			Description: "Briefing du matin: mails, agenda, marche, infos systeme",
			Triggers: []string{
				"rapport du matin", "briefing du matin", "bonjour majordome",
				"lance le rapport du matin", "fais le point du matin",
				"rapport matinal", "le point du matin",
			},
			Steps: []Step{
				{Kind: ActionNavigate, Action: "https://mail.google.com"},
				{Kind: ActionNavigate, Action: "https://calendar.google.com"},
				{Kind: ActionScript, Action: "mexc_scanner"},
				{Kind: ActionTool, Action: "system_info"},
			},
		},
		{
			Name:        "routine_soir",
			Category:    "routine",
			Description: "Routine du soir: sauvegarde, nettoyage, mise en veille",
			Triggers: []string{
				"routine du soir", "bonne nuit majordome", "on ferme pour ce soir",
				"termine la journee", "fin de journee",
			},
			Steps: []Step{
				{Kind: ActionScript, Action: "backup_quotidien"},
				{Kind: ActionShell, Action: "Clear-RecycleBin -Force -ErrorAction SilentlyContinue"},
				{Kind: ActionShell, Action: "rundll32.exe powrprof.dll,SetSuspendState 0,1,0"},
			},
			Confirm: true,
		},
		{
			Name:        "mode_dev",
			Category:    "mode",
			Description: "Environnement de developpement: VSCode, terminal, GitHub",
			Triggers: []string{
				"mode dev", "mode developpement", "passe en mode dev",
				"active le mode dev", "session de code", "on code",
			},
			Steps: []Step{
				{Kind: ActionAppOpen, Action: "code"},
				{Kind: ActionAppOpen, Action: "wt"},
				{Kind: ActionNavigate, Action: "https://github.com"},
			},
		},
		{
			Name:        "mode_gaming",
			Category:    "mode",
			Description: "Mode jeu: Steam, Discord, performances maximales",
			Triggers: []string{
				"mode gaming", "mode jeu", "passe en mode gaming",
				"active le mode gaming", "session gaming", "on joue",
			},
			Steps: []Step{
				{Kind: ActionAppOpen, Action: "steam"},
				{Kind: ActionAppOpen, Action: "discord"},
				{Kind: ActionShell, Action: "powercfg /setactive 8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c"},
			},
		},
		{
			Name:        "mode_focus",
			Category:    "mode",
			Description: "Mode concentration: notifications coupees, musique calme",
			Triggers: []string{
				"mode focus", "mode concentration", "passe en mode focus",
				"active le mode focus", "laisse moi me concentrer", "mode travail profond",
			},
			Steps: []Step{
				{Kind: ActionShell, Action: "Start-Process ms-settings:quiethours"},
				{Kind: ActionNavigate, Action: "https://open.spotify.com/playlist/focus"},
				{Kind: ActionShell, Action: "(New-Object -ComObject Shell.Application).MinimizeAll()"},
			},
		},
		{
			Name:        "mode_trading",
			Category:    "mode",
			Description: "Poste de trading: TradingView, MEXC, scanner",
			Triggers: []string{
				"mode trading", "passe en mode trading", "active le mode trading",
				"poste de trading", "session trading", "on trade",
			},
			Steps: []Step{
				{Kind: ActionNavigate, Action: "https://www.tradingview.com"},
				{Kind: ActionNavigate, Action: "https://www.mexc.com"},
				{Kind: ActionScript, Action: "mexc_scanner"},
			},
		},
		{
			Name:        "mode_musique",
			Category:    "mode",
			Description: "Ambiance musicale: Spotify et volume confortable",
			Triggers: []string{
				"mode musique", "ambiance musicale", "mets l'ambiance",
				"active le mode musique",
			},
			Steps: []Step{
				{Kind: ActionAppOpen, Action: "spotify"},
				{Kind: ActionShell, Action: "(New-Object -ComObject WScript.Shell).SendKeys([char]179)"},
			},
		},
		{
			Name:        "mode_cinema",
			Category:    "mode",
			Description: "Soiree film: Netflix plein ecran, lumieres tamisees",
			Triggers: []string{
				"mode cinema", "soiree film", "mode film",
				"active le mode cinema", "on regarde un film",
			},
			Steps: []Step{
				{Kind: ActionNavigate, Action: "https://www.netflix.com"},
				{Kind: ActionShell, Action: "(New-Object -ComObject WScript.Shell).SendKeys('{F11}')"},
				{Kind: ActionShell, Action: "Start-Process ms-settings:nightlight"},
			},
		},
		{
			Name:        "mode_presentation",
			Category:    "mode",
			Description: "Mode presentation: notifications coupees, bureau propre",
			Triggers: []string{
				"mode presentation", "je presente", "active le mode presentation",
				"passe en mode presentation",
			},
			Steps: []Step{
				{Kind: ActionShell, Action: "Start-Process ms-settings:quiethours"},
				{Kind: ActionShell, Action: "(New-Object -ComObject Shell.Application).MinimizeAll()"},
			},
		},
		{
			Name:        "mode_stream",
			Category:    "mode",
			Description: "Setup streaming: OBS, Discord, navigateur sur le chat",
			Triggers: []string{
				"mode stream", "on stream", "active le mode stream",
				"lance le stream", "setup streaming",
			},
			Steps: []Step{
				{Kind: ActionAppOpen, Action: "obs64"},
				{Kind: ActionAppOpen, Action: "discord"},
				{Kind: ActionNavigate, Action: "https://dashboard.twitch.tv"},
			},
		},
		{
			Name:        "mode_reunion",
			Category:    "mode",
			Description: "Mode reunion: Meet, notifications coupees, micro pret",
			Triggers: []string{
				"mode reunion", "j'ai une reunion", "active le mode reunion",
				"passe en mode reunion", "lance la visio",
			},
			Steps: []Step{
				{Kind: ActionNavigate, Action: "https://meet.google.com"},
				{Kind: ActionShell, Action: "Start-Process ms-settings:quiethours"},
			},
		},
		{
			Name:        "mode_lecture",
			Category:    "mode",
			Description: "Mode lecture: eclairage nocturne, silence",
			Triggers: []string{
				"mode lecture", "je vais lire", "active le mode lecture",
			},
			Steps: []Step{
				{Kind: ActionShell, Action: "Start-Process ms-settings:nightlight"},
				{Kind: ActionShell, Action: "(New-Object -ComObject WScript.Shell).SendKeys([char]173)"},
			},
		},
		{
			Name:        "diagnostic_complet",
			Category:    "maintenance",
			Description: "Diagnostic complet: systeme, processus, disque, cluster",
			Triggers: []string{
				"diagnostic complet", "lance un diagnostic", "check complet",
				"fais un diagnostic", "diagnostic du systeme", "bilan de sante",
			},
			Steps: []Step{
				{Kind: ActionTool, Action: "system_info"},
				{Kind: ActionTool, Action: "list_processes"},
				{Kind: ActionShell, Action: "Get-PSDrive C | Select-Object Used,Free"},
				{Kind: ActionTool, Action: "lm_cluster_status"},
			},
		},
		{
			Name:        "cleanup_ram",
			Category:    "maintenance",
			Description: "Liberer de la memoire: fermer les processus gourmands",
			Triggers: []string{
				"libere de la ram", "nettoie la memoire", "cleanup ram",
				"libere de la memoire", "le pc rame",
			},
			Steps: []Step{
				{Kind: ActionTool, Action: "list_processes"},
				{Kind: ActionShell, Action: "Get-Process | Sort-Object WS -Descending | Select-Object -First 10"},
			},
		},
		{
			Name:        "backup_rapide",
			Category:    "maintenance",
			Description: "Sauvegarde rapide des documents et projets",
			Triggers: []string{
				"backup rapide", "sauvegarde rapide", "lance un backup",
				"sauvegarde mes documents", "fais une sauvegarde",
			},
			Steps: []Step{
				{Kind: ActionScript, Action: "backup_quotidien"},
			},
		},
	}
}
