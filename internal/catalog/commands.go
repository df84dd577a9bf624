package catalog

// BuiltinCommands is the built-in French command catalog. Order matters:
// the matcher keeps the first best-scoring entry, so specific entries
// (ouvrir_chrome) are listed before generic parameterised ones (ouvrir_app).
func BuiltinCommands() []CommandEntry {
	return []CommandEntry{
		// ── Navigation web ──────────────────────────────────────────
		{
			Name:        "ouvrir_chrome",
			Category:    "navigation",
			Description: "Ouvrir le navigateur Google Chrome",
			Triggers: []string{
				"ouvre chrome", "ouvrir chrome", "lance chrome", "ouvre le navigateur",
				"ouvrir le navigateur", "lance le navigateur", "ouvre google chrome",
				"demarre chrome", "ouvre internet", "ouvrir internet",
			},
			Kind:   ActionAppOpen,
			Action: "chrome",
		},
		{
			Name:        "ouvrir_gmail",
			Category:    "navigation",
			Description: "Ouvrir Gmail",
			Triggers: []string{
				"ouvre gmail", "ouvrir gmail", "ouvre mes mails", "ouvre mes emails",
				"va sur gmail", "ouvre ma boite mail", "ouvre la messagerie",
				"check mes mails", "verifie mes mails",
			},
			Kind:   ActionNavigate,
			Action: "https://mail.google.com",
		},
		{
			Name:        "ouvrir_youtube",
			Category:    "navigation",
			Description: "Ouvrir YouTube",
			Triggers: []string{
				"ouvre youtube", "va sur youtube", "lance youtube",
				"ouvrir youtube", "mets youtube",
			},
			Kind:   ActionNavigate,
			Action: "https://youtube.com",
		},
		{
			Name:        "ouvrir_github",
			Category:    "navigation",
			Description: "Ouvrir GitHub",
			Triggers: []string{
				"ouvre github", "va sur github", "ouvrir github",
			},
			Kind:   ActionNavigate,
			Action: "https://github.com",
		},
		{
			Name:        "ouvrir_tradingview",
			Category:    "navigation",
			Description: "Ouvrir TradingView",
			Triggers: []string{
				"ouvre tradingview", "va sur tradingview", "ouvre les charts",
				"affiche les charts", "ouvre les graphiques",
			},
			Kind:   ActionNavigate,
			Action: "https://www.tradingview.com",
		},
		{
			Name:        "ouvrir_mexc",
			Category:    "navigation",
			Description: "Ouvrir l'exchange MEXC",
			Triggers: []string{
				"ouvre mexc", "va sur mexc", "ouvre l'exchange",
			},
			Kind:   ActionNavigate,
			Action: "https://www.mexc.com",
		},
		{
			Name:        "aller_sur_site",
			Category:    "navigation",
			Description: "Naviguer vers un site web",
			Triggers: []string{
				"va sur {site}", "navigue vers {site}", "aller sur {site}",
				"charge {site}", "affiche le site {site}",
			},
			Kind:   ActionNavigate,
			Action: "{site}",
			Params: []string{"site"},
		},
		{
			Name:        "chercher_google",
			Category:    "navigation",
			Description: "Rechercher quelque chose sur Google",
			Triggers: []string{
				"cherche {requete}", "recherche {requete}", "google {requete}",
				"cherche sur google {requete}", "recherche sur google {requete}",
				"trouve {requete}", "chercher {requete}",
			},
			Kind:   ActionSearch,
			Action: "{requete}",
			Params: []string{"requete"},
		},
		{
			Name:        "nouvel_onglet",
			Category:    "navigation",
			Description: "Ouvrir un nouvel onglet",
			Triggers: []string{
				"nouvel onglet", "ouvre un onglet", "nouvel onglet chrome",
			},
			Kind:   ActionShell,
			Action: `(New-Object -ComObject WScript.Shell).SendKeys('^t')`,
		},
		{
			Name:        "fermer_onglet",
			Category:    "navigation",
			Description: "Fermer l'onglet actif",
			Triggers: []string{
				"ferme l'onglet", "fermer l'onglet", "ferme cet onglet",
			},
			Kind:   ActionShell,
			Action: `(New-Object -ComObject WScript.Shell).SendKeys('^w')`,
		},
		{
			Name:        "mode_incognito",
			Category:    "navigation",
			Description: "Ouvrir Chrome en navigation privee",
			Triggers: []string{
				"navigation privee", "mode incognito", "ouvre chrome en prive",
			},
			Kind:   ActionShell,
			Action: "Start-Process chrome -ArgumentList '--incognito'",
		},

		// ── Fichiers & documents ────────────────────────────────────
		{
			Name:        "ouvrir_documents",
			Category:    "fichiers",
			Description: "Ouvrir le dossier Documents",
			Triggers: []string{
				"ouvre mes documents", "ouvrir mes documents", "ouvre documents",
				"affiche mes documents", "va dans mes documents", "ouvre le dossier documents",
			},
			Kind:   ActionShell,
			Action: "Start-Process explorer.exe -ArgumentList ([Environment]::GetFolderPath('MyDocuments'))",
		},
		{
			Name:        "ouvrir_telechargements",
			Category:    "fichiers",
			Description: "Ouvrir le dossier Telechargements",
			Triggers: []string{
				"ouvre les telechargements", "ouvre mes telechargements",
				"ouvrir telechargements", "va dans telechargements",
			},
			Kind:   ActionShell,
			Action: "Start-Process explorer.exe -ArgumentList ([Environment]::GetFolderPath('UserProfile') + '\\Downloads')",
		},
		{
			Name:        "ouvrir_explorateur",
			Category:    "fichiers",
			Description: "Ouvrir l'explorateur de fichiers",
			Triggers: []string{
				"ouvre l'explorateur", "ouvrir l'explorateur", "ouvre l'explorateur de fichiers",
			},
			Kind:   ActionAppOpen,
			Action: "explorer",
		},
		{
			Name:        "ouvrir_dossier",
			Category:    "fichiers",
			Description: "Ouvrir un dossier specifique",
			Triggers: []string{
				"ouvre le dossier {dossier}", "ouvrir le dossier {dossier}",
				"va dans {dossier}", "explore {dossier}",
			},
			Kind:   ActionShell,
			Action: "Start-Process explorer.exe -ArgumentList '{dossier}'",
			Params: []string{"dossier"},
		},

		// ── Applications ────────────────────────────────────────────
		{
			Name:        "ouvrir_vscode",
			Category:    "app",
			Description: "Ouvrir Visual Studio Code",
			Triggers: []string{
				"ouvre vscode", "ouvrir vscode", "lance vscode", "ouvre visual studio code",
				"ouvre vs code", "lance vs code", "ouvre l'editeur",
			},
			Kind:   ActionAppOpen,
			Action: "code",
		},
		{
			Name:        "ouvrir_terminal",
			Category:    "app",
			Description: "Ouvrir un terminal PowerShell",
			Triggers: []string{
				"ouvre le terminal", "ouvrir le terminal", "lance powershell",
				"ouvre powershell", "lance le terminal", "ouvre la console",
			},
			Kind:   ActionAppOpen,
			Action: "wt",
		},
		{
			Name:        "ouvrir_lmstudio",
			Category:    "app",
			Description: "Ouvrir LM Studio",
			Triggers: []string{
				"ouvre lm studio", "lance lm studio", "demarre lm studio",
				"ouvrir lm studio", "ouvre l m studio",
			},
			Kind:   ActionAppOpen,
			Action: "lmstudio",
		},
		{
			Name:        "ouvrir_discord",
			Category:    "app",
			Description: "Ouvrir Discord",
			Triggers: []string{
				"ouvre discord", "lance discord", "ouvrir discord",
			},
			Kind:   ActionAppOpen,
			Action: "discord",
		},
		{
			Name:        "ouvrir_spotify",
			Category:    "app",
			Description: "Lancer Spotify",
			Triggers: []string{
				"ouvre spotify", "lance spotify", "lance la musique", "mets de la musique",
			},
			Kind:   ActionAppOpen,
			Action: "spotify",
		},
		{
			Name:        "ouvrir_calculatrice",
			Category:    "app",
			Description: "Ouvrir la calculatrice",
			Triggers: []string{
				"ouvre la calculatrice", "calculatrice", "lance la calculatrice",
			},
			Kind:   ActionAppOpen,
			Action: "calc",
		},
		{
			Name:        "ouvrir_notepad",
			Category:    "app",
			Description: "Ouvrir le bloc-notes",
			Triggers: []string{
				"ouvre le bloc notes", "ouvre notepad", "bloc notes",
			},
			Kind:   ActionAppOpen,
			Action: "notepad",
		},
		{
			Name:        "ouvrir_paint",
			Category:    "app",
			Description: "Ouvrir Paint",
			Triggers: []string{
				"ouvre paint", "lance paint",
			},
			Kind:   ActionAppOpen,
			Action: "mspaint",
		},
		{
			Name:        "ouvrir_obs",
			Category:    "app",
			Description: "Ouvrir OBS Studio",
			Triggers: []string{
				"ouvre obs", "lance obs", "ouvre obs studio",
			},
			Kind:   ActionAppOpen,
			Action: "obs64",
		},
		{
			Name:        "ouvrir_task_manager",
			Category:    "app",
			Description: "Ouvrir le gestionnaire de taches",
			Triggers: []string{
				"gestionnaire de taches", "task manager", "ouvre le gestionnaire de taches",
			},
			Kind:   ActionAppOpen,
			Action: "taskmgr",
		},
		{
			Name:        "ouvrir_app",
			Category:    "app",
			Description: "Ouvrir une application par son nom",
			Triggers: []string{
				"ouvre {app}", "ouvrir {app}", "lance {app}", "demarre {app}",
			},
			Kind:   ActionAppOpen,
			Action: "{app}",
			Params: []string{"app"},
		},

		// ── Media ───────────────────────────────────────────────────
		{
			Name:        "volume_haut",
			Category:    "media",
			Description: "Augmenter le volume",
			Triggers: []string{
				"monte le volume", "augmente le volume", "volume plus fort",
				"plus fort", "monte le son", "augmente le son",
			},
			Kind:   ActionShell,
			Action: "(New-Object -ComObject WScript.Shell).SendKeys([char]175)",
		},
		{
			Name:        "volume_bas",
			Category:    "media",
			Description: "Baisser le volume",
			Triggers: []string{
				"baisse le volume", "diminue le volume", "volume moins fort",
				"moins fort", "baisse le son", "diminue le son",
			},
			Kind:   ActionShell,
			Action: "(New-Object -ComObject WScript.Shell).SendKeys([char]174)",
		},
		{
			Name:        "muet",
			Category:    "media",
			Description: "Couper ou reactiver le son",
			Triggers: []string{
				"coupe le son", "mute", "silence", "muet",
				"active le son", "reactive le son",
			},
			Kind:   ActionShell,
			Action: "(New-Object -ComObject WScript.Shell).SendKeys([char]173)",
		},
		{
			Name:        "media_play_pause",
			Category:    "media",
			Description: "Mettre en pause ou reprendre la lecture",
			Triggers: []string{
				"pause", "play", "reprends la lecture", "mets en pause",
			},
			Kind:   ActionShell,
			Action: "(New-Object -ComObject WScript.Shell).SendKeys([char]179)",
		},
		{
			Name:        "media_next",
			Category:    "media",
			Description: "Passer au morceau suivant",
			Triggers: []string{
				"morceau suivant", "prochain morceau", "musique suivante", "piste suivante",
			},
			Kind:   ActionShell,
			Action: "(New-Object -ComObject WScript.Shell).SendKeys([char]176)",
		},
		{
			Name:        "media_previous",
			Category:    "media",
			Description: "Revenir au morceau precedent",
			Triggers: []string{
				"morceau precedent", "musique precedente", "piste precedente",
			},
			Kind:   ActionShell,
			Action: "(New-Object -ComObject WScript.Shell).SendKeys([char]177)",
		},

		// ── Fenetres ────────────────────────────────────────────────
		{
			Name:        "minimiser_tout",
			Category:    "fenetre",
			Description: "Afficher le bureau",
			Triggers: []string{
				"montre le bureau", "affiche le bureau", "minimise tout",
			},
			Kind:   ActionShell,
			Action: "(New-Object -ComObject Shell.Application).MinimizeAll()",
		},
		{
			Name:        "fermer_fenetre",
			Category:    "fenetre",
			Description: "Fermer la fenetre active",
			Triggers: []string{
				"ferme la fenetre", "ferme ca", "fermer la fenetre",
			},
			Kind:   ActionShell,
			Action: "(New-Object -ComObject WScript.Shell).SendKeys('%{F4}')",
		},
		{
			Name:        "maximiser_fenetre",
			Category:    "fenetre",
			Description: "Maximiser la fenetre active",
			Triggers: []string{
				"plein ecran", "maximise la fenetre", "agrandis la fenetre",
			},
			Kind:   ActionShell,
			Action: "(New-Object -ComObject WScript.Shell).SendKeys('#{UP}')",
		},
		{
			Name:        "fenetre_gauche",
			Category:    "fenetre",
			Description: "Snapper la fenetre a gauche",
			Triggers: []string{
				"mets a gauche", "fenetre a gauche", "snap a gauche",
			},
			Kind:   ActionShell,
			Action: "(New-Object -ComObject WScript.Shell).SendKeys('#{LEFT}')",
		},
		{
			Name:        "fenetre_droite",
			Category:    "fenetre",
			Description: "Snapper la fenetre a droite",
			Triggers: []string{
				"mets a droite", "fenetre a droite", "snap a droite",
			},
			Kind:   ActionShell,
			Action: "(New-Object -ComObject WScript.Shell).SendKeys('#{RIGHT}')",
		},

		// ── Clipboard & saisie ──────────────────────────────────────
		{
			Name:        "copier",
			Category:    "clipboard",
			Description: "Copier la selection",
			Triggers:    []string{"copie", "copier la selection"},
			Kind:        ActionShell,
			Action:      "(New-Object -ComObject WScript.Shell).SendKeys('^c')",
		},
		{
			Name:        "coller",
			Category:    "clipboard",
			Description: "Coller le presse-papier",
			Triggers:    []string{"colle", "coller"},
			Kind:        ActionShell,
			Action:      "(New-Object -ComObject WScript.Shell).SendKeys('^v')",
		},
		{
			Name:        "couper",
			Category:    "clipboard",
			Description: "Couper la selection",
			Triggers:    []string{"coupe", "couper la selection"},
			Kind:        ActionShell,
			Action:      "(New-Object -ComObject WScript.Shell).SendKeys('^x')",
		},
		{
			Name:        "sauvegarder",
			Category:    "clipboard",
			Description: "Sauvegarder le fichier actif",
			Triggers:    []string{"sauvegarde", "enregistre le fichier", "sauvegarde le fichier"},
			Kind:        ActionShell,
			Action:      "(New-Object -ComObject WScript.Shell).SendKeys('^s')",
		},
		{
			Name:        "annuler",
			Category:    "clipboard",
			Description: "Annuler la derniere action",
			Triggers:    []string{"annule", "annule ca", "annuler"},
			Kind:        ActionShell,
			Action:      "(New-Object -ComObject WScript.Shell).SendKeys('^z')",
		},
		{
			Name:        "tout_selectionner",
			Category:    "clipboard",
			Description: "Selectionner tout",
			Triggers:    []string{"selectionne tout", "tout selectionner"},
			Kind:        ActionShell,
			Action:      "(New-Object -ComObject WScript.Shell).SendKeys('^a')",
		},

		// ── Systeme ─────────────────────────────────────────────────
		{
			Name:        "verrouiller",
			Category:    "systeme",
			Description: "Verrouiller le PC",
			Triggers: []string{
				"verrouille le pc", "verrouille l'ecran", "lock",
				"verrouiller", "bloque le pc",
			},
			Kind:    ActionShell,
			Action:  "rundll32.exe user32.dll,LockWorkStation",
			Confirm: true,
		},
		{
			Name:        "eteindre",
			Category:    "systeme",
			Description: "Eteindre le PC",
			Triggers: []string{
				"eteins le pc", "eteindre le pc", "arrete le pc",
				"shutdown", "eteindre l'ordinateur",
			},
			Kind:    ActionShell,
			Action:  "Stop-Computer -Force",
			Confirm: true,
		},
		{
			Name:        "redemarrer",
			Category:    "systeme",
			Description: "Redemarrer le PC",
			Triggers: []string{
				"redemarre le pc", "redemarrer le pc", "reboot",
				"redemarre l'ordinateur", "restart",
			},
			Kind:    ActionShell,
			Action:  "Restart-Computer -Force",
			Confirm: true,
		},
		{
			Name:        "veille",
			Category:    "systeme",
			Description: "Mettre le PC en veille",
			Triggers: []string{
				"mise en veille", "mets en veille", "mode veille",
			},
			Kind:   ActionShell,
			Action: "rundll32.exe powrprof.dll,SetSuspendState 0,1,0",
		},
		{
			Name:        "capture_ecran",
			Category:    "systeme",
			Description: "Faire une capture d'ecran",
			Triggers: []string{
				"capture ecran", "screenshot", "prends une capture",
				"fais une capture", "capture d'ecran", "copie l'ecran",
			},
			Kind:   ActionTool,
			Action: "screenshot",
		},
		{
			Name:        "info_systeme",
			Category:    "systeme",
			Description: "Afficher les infos systeme",
			Triggers: []string{
				"info systeme", "infos systeme", "statut systeme",
				"etat du systeme", "donne moi les infos systeme",
			},
			Kind:   ActionTool,
			Action: "system_info",
		},
		{
			Name:        "processus",
			Category:    "systeme",
			Description: "Lister les processus en cours",
			Triggers: []string{
				"liste les processus", "montre les processus",
				"quels processus tournent", "affiche les processus",
			},
			Kind:   ActionTool,
			Action: "list_processes",
		},
		{
			Name:        "bluetooth_on",
			Category:    "systeme",
			Description: "Activer le Bluetooth",
			Triggers: []string{
				"active le bluetooth", "allume le bluetooth", "bluetooth on",
			},
			Kind:   ActionShell,
			Action: "Start-Process ms-settings:bluetooth",
		},
		{
			Name:        "mode_nuit",
			Category:    "systeme",
			Description: "Activer le mode nuit",
			Triggers: []string{
				"mode nuit", "active le mode nuit", "eclairage nocturne",
			},
			Kind:   ActionShell,
			Action: "Start-Process ms-settings:nightlight",
		},
		{
			Name:        "ouvrir_parametres",
			Category:    "systeme",
			Description: "Ouvrir les parametres Windows",
			Triggers: []string{
				"ouvre les parametres", "ouvrir les parametres", "parametres windows",
			},
			Kind:   ActionShell,
			Action: "Start-Process ms-settings:",
		},

		// ── Dev ─────────────────────────────────────────────────────
		{
			Name:        "git_status",
			Category:    "dev",
			Description: "Afficher le statut Git du projet courant",
			Triggers: []string{
				"statut git", "git status", "statut du depot",
			},
			Kind:   ActionScript,
			Action: "git_status",
		},
		{
			Name:        "git_log",
			Category:    "dev",
			Description: "Afficher les derniers commits",
			Triggers: []string{
				"git log", "derniers commits", "montre les commits",
			},
			Kind:   ActionScript,
			Action: "git_log",
		},
		{
			Name:        "docker_ps",
			Category:    "dev",
			Description: "Lister les conteneurs Docker",
			Triggers: []string{
				"docker ps", "liste les conteneurs", "liste les conteneurs docker",
				"conteneurs docker",
			},
			Kind:   ActionScript,
			Action: "docker_ps",
		},

		// ── Trading ─────────────────────────────────────────────────
		{
			Name:        "scanner_marche",
			Category:    "trading",
			Description: "Scanner le marche MEXC",
			Triggers: []string{
				"scanne le marche", "scanner le marche", "lance le scanner",
				"analyse le marche", "scan mexc", "lance mexc scanner",
			},
			Kind:   ActionScript,
			Action: "mexc_scanner",
		},
		{
			Name:        "detecter_breakout",
			Category:    "trading",
			Description: "Detecter les breakouts",
			Triggers: []string{
				"detecte les breakouts", "cherche les breakouts",
				"breakout detector", "lance breakout", "lance le detecteur",
			},
			Kind:   ActionScript,
			Action: "breakout_detector",
		},
		{
			Name:        "pipeline_trading",
			Category:    "trading",
			Description: "Lancer le pipeline de trading intensif",
			Triggers: []string{
				"lance le pipeline", "pipeline intensif", "demarre le pipeline",
				"lance le trading", "pipeline trading",
			},
			Kind:    ActionScript,
			Action:  "pipeline_intensif_v2",
			Confirm: true,
		},
		{
			Name:        "sniper_breakout",
			Category:    "trading",
			Description: "Lancer le sniper breakout",
			Triggers: []string{
				"lance le sniper", "sniper breakout", "demarre le sniper",
				"active le sniper",
			},
			Kind:    ActionScript,
			Action:  "sniper_breakout",
			Confirm: true,
		},
		{
			Name:        "statut_cluster",
			Category:    "trading",
			Description: "Verifier le statut du cluster IA",
			Triggers: []string{
				"statut du cluster", "etat du cluster", "statut cluster",
				"status cluster", "verifie le cluster", "comment va le cluster",
			},
			Kind:   ActionTool,
			Action: "lm_cluster_status",
		},
		{
			Name:        "consensus_ia",
			Category:    "trading",
			Description: "Lancer un consensus multi-IA",
			Triggers: []string{
				"consensus sur {question}", "demande un consensus sur {question}",
				"lance un consensus {question}", "consensus {question}",
			},
			Kind:   ActionTool,
			Action: "consensus:{question}",
			Params: []string{"question"},
		},

		// ── Controle de l'assistant ─────────────────────────────────
		{
			Name:        "majordome_aide",
			Category:    "assistant",
			Description: "Afficher l'aide et la liste des commandes",
			Triggers: []string{
				"aide", "help", "quelles commandes", "que sais tu faire",
				"liste les commandes", "montre les commandes",
			},
			Kind:   ActionListCommands,
			Action: "all",
		},
		{
			Name:        "majordome_stop",
			Category:    "assistant",
			Description: "Arreter l'assistant",
			Triggers: []string{
				"stop", "arrete", "quitte", "exit", "au revoir",
				"arrete toi", "ferme toi",
			},
			Kind:   ActionExit,
			Action: "stop",
		},
	}
}
