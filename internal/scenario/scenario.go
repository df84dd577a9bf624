// Package scenario holds the regression corpus and the validation harness
// that replays it through the resolver.
//
// A scenario pins one French utterance to the set of catalog entries that
// are acceptable answers. Expected is a set on purpose: some utterances are
// legitimately ambiguous and several routings are correct. The harness
// replays the fixed corpus over many cycles to check that matching is
// stable, not just correct once.
package scenario

// Case is one immutable regression fixture.
type Case struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Difficulty  string   `json:"difficulty"`
	Description string   `json:"description"`
	VoiceInput  string   `json:"voice_input"`
	Expected    []string `json:"expected"`

	// ExpectedResult is a human-readable description of the acceptable
	// outcome, for reports.
	ExpectedResult string `json:"expected_result"`
}

// Builtin returns the built-in regression corpus, exercised against the
// built-in catalogs.
func Builtin() []Case {
	return []Case{
		// ── Routines & modes (skills) ───────────────────────────────
		{Name: "routine_rapport_matin", Category: "routine", Difficulty: "easy",
			Description: "Briefing du matin par phrase canonique",
			VoiceInput:  "rapport du matin", Expected: []string{"rapport_matin"},
			ExpectedResult: "Skill rapport_matin lance"},
		{Name: "routine_bonne_nuit", Category: "routine", Difficulty: "easy",
			Description: "Routine du soir par formule de politesse",
			VoiceInput:  "bonne nuit majordome", Expected: []string{"routine_soir"},
			ExpectedResult: "Skill routine_soir lance"},
		{Name: "mode_dev_direct", Category: "mode", Difficulty: "easy",
			Description: "Activation du mode developpement",
			VoiceInput:  "passe en mode dev", Expected: []string{"mode_dev"},
			ExpectedResult: "Skill mode_dev lance"},
		{Name: "mode_gaming_court", Category: "mode", Difficulty: "easy",
			Description: "Activation du mode jeu par nom seul",
			VoiceInput:  "mode gaming", Expected: []string{"mode_gaming"},
			ExpectedResult: "Skill mode_gaming lance"},
		{Name: "mode_focus_indirect", Category: "mode", Difficulty: "normal",
			Description: "Demande de concentration formulee indirectement",
			VoiceInput:  "laisse moi me concentrer", Expected: []string{"mode_focus"},
			ExpectedResult: "Skill mode_focus lance"},
		{Name: "mode_trading_direct", Category: "mode", Difficulty: "easy",
			Description: "Activation du poste de trading",
			VoiceInput:  "passe en mode trading", Expected: []string{"mode_trading"},
			ExpectedResult: "Skill mode_trading lance"},
		{Name: "mode_musique_ambiance", Category: "mode", Difficulty: "normal",
			Description: "Demande d'ambiance musicale",
			VoiceInput:  "mets l'ambiance", Expected: []string{"mode_musique"},
			ExpectedResult: "Skill mode_musique lance"},
		{Name: "mode_cinema_film", Category: "mode", Difficulty: "normal",
			Description: "Soiree film formulee en langage naturel",
			VoiceInput:  "on regarde un film", Expected: []string{"mode_cinema"},
			ExpectedResult: "Skill mode_cinema lance"},
		{Name: "mode_presentation_direct", Category: "mode", Difficulty: "easy",
			Description: "Activation du mode presentation",
			VoiceInput:  "je presente", Expected: []string{"mode_presentation"},
			ExpectedResult: "Skill mode_presentation lance"},
		{Name: "mode_stream_lance", Category: "mode", Difficulty: "normal",
			Description: "Setup streaming, le mot lance est partage avec les commandes",
			VoiceInput:  "lance le stream", Expected: []string{"mode_stream"},
			ExpectedResult: "Skill mode_stream lance"},
		{Name: "mode_reunion_visio", Category: "mode", Difficulty: "easy",
			Description: "Preparation de reunion",
			VoiceInput:  "j'ai une reunion", Expected: []string{"mode_reunion"},
			ExpectedResult: "Skill mode_reunion lance"},
		{Name: "mode_lecture_direct", Category: "mode", Difficulty: "easy",
			Description: "Activation du mode lecture",
			VoiceInput:  "je vais lire", Expected: []string{"mode_lecture"},
			ExpectedResult: "Skill mode_lecture lance"},
		{Name: "maintenance_diagnostic", Category: "maintenance", Difficulty: "normal",
			Description: "Diagnostic complet par formule familiere",
			VoiceInput:  "bilan de sante", Expected: []string{"diagnostic_complet"},
			ExpectedResult: "Skill diagnostic_complet lance"},
		{Name: "maintenance_pc_rame", Category: "maintenance", Difficulty: "normal",
			Description: "Plainte de lenteur qui declenche le nettoyage memoire",
			VoiceInput:  "le pc rame", Expected: []string{"cleanup_ram"},
			ExpectedResult: "Skill cleanup_ram lance"},
		{Name: "maintenance_backup", Category: "maintenance", Difficulty: "easy",
			Description: "Sauvegarde rapide",
			VoiceInput:  "fais une sauvegarde", Expected: []string{"backup_rapide"},
			ExpectedResult: "Skill backup_rapide lance"},

		// ── Navigation ──────────────────────────────────────────────
		{Name: "nav_chrome_direct", Category: "navigation", Difficulty: "easy",
			Description: "Ouverture de Chrome",
			VoiceInput:  "ouvre chrome", Expected: []string{"ouvrir_chrome"},
			ExpectedResult: "Chrome ouvert"},
		{Name: "nav_navigateur_generique", Category: "navigation", Difficulty: "easy",
			Description: "Ouverture du navigateur sans le nommer",
			VoiceInput:  "ouvre le navigateur", Expected: []string{"ouvrir_chrome"},
			ExpectedResult: "Chrome ouvert"},
		{Name: "nav_youtube_direct", Category: "navigation", Difficulty: "easy",
			Description: "Navigation vers YouTube",
			VoiceInput:  "va sur youtube", Expected: []string{"ouvrir_youtube"},
			ExpectedResult: "YouTube ouvert"},
		{Name: "nav_gmail_mails", Category: "navigation", Difficulty: "easy",
			Description: "Ouverture des mails",
			VoiceInput:  "ouvre mes mails", Expected: []string{"ouvrir_gmail"},
			ExpectedResult: "Gmail ouvert"},
		{Name: "nav_site_parametre", Category: "navigation", Difficulty: "normal",
			Description: "Navigation vers un domaine arbitraire",
			VoiceInput:  "va sur github.com", Expected: []string{"aller_sur_site", "ouvrir_github"},
			ExpectedResult: "Navigation vers github.com"},
		{Name: "nav_recherche_meteo", Category: "navigation", Difficulty: "easy",
			Description: "Recherche Google parametree",
			VoiceInput:  "cherche la meteo a paris", Expected: []string{"chercher_google"},
			ExpectedResult: "Recherche 'la meteo a paris'"},
		{Name: "nav_incognito", Category: "navigation", Difficulty: "easy",
			Description: "Navigation privee",
			VoiceInput:  "navigation privee", Expected: []string{"mode_incognito"},
			ExpectedResult: "Chrome incognito ouvert"},
		{Name: "nav_fermer_onglet", Category: "navigation", Difficulty: "easy",
			Description: "Fermeture d'onglet",
			VoiceInput:  "ferme l'onglet", Expected: []string{"fermer_onglet"},
			ExpectedResult: "Onglet ferme"},
		{Name: "nav_charts", Category: "navigation", Difficulty: "normal",
			Description: "Ouverture des graphiques de trading",
			VoiceInput:  "ouvre les charts", Expected: []string{"ouvrir_tradingview"},
			ExpectedResult: "TradingView ouvert"},

		// ── Fichiers ────────────────────────────────────────────────
		{Name: "fichiers_documents", Category: "fichiers", Difficulty: "easy",
			Description: "Ouverture du dossier Documents",
			VoiceInput:  "ouvre mes documents", Expected: []string{"ouvrir_documents"},
			ExpectedResult: "Dossier Documents ouvert"},
		{Name: "fichiers_telechargements", Category: "fichiers", Difficulty: "easy",
			Description: "Ouverture des telechargements",
			VoiceInput:  "va dans telechargements", Expected: []string{"ouvrir_telechargements"},
			ExpectedResult: "Dossier Telechargements ouvert"},
		{Name: "fichiers_dossier_parametre", Category: "fichiers", Difficulty: "normal",
			Description: "Ouverture d'un dossier nomme",
			VoiceInput:  "ouvre le dossier projets", Expected: []string{"ouvrir_dossier"},
			ExpectedResult: "Dossier 'projets' ouvert"},
		{Name: "fichiers_explorateur", Category: "fichiers", Difficulty: "easy",
			Description: "Ouverture de l'explorateur",
			VoiceInput:  "ouvre l'explorateur", Expected: []string{"ouvrir_explorateur"},
			ExpectedResult: "Explorateur ouvert"},

		// ── Applications ────────────────────────────────────────────
		{Name: "app_vscode", Category: "app", Difficulty: "easy",
			Description: "Ouverture de VSCode",
			VoiceInput:  "ouvre vscode", Expected: []string{"ouvrir_vscode"},
			ExpectedResult: "VSCode ouvert"},
		{Name: "app_spotify", Category: "app", Difficulty: "easy",
			Description: "Lancement de Spotify",
			VoiceInput:  "lance spotify", Expected: []string{"ouvrir_spotify"},
			ExpectedResult: "Spotify lance"},
		{Name: "app_calculatrice", Category: "app", Difficulty: "easy",
			Description: "Ouverture de la calculatrice",
			VoiceInput:  "ouvre la calculatrice", Expected: []string{"ouvrir_calculatrice"},
			ExpectedResult: "Calculatrice ouverte"},
		{Name: "app_discord", Category: "app", Difficulty: "easy",
			Description: "Ouverture de Discord",
			VoiceInput:  "ouvre discord", Expected: []string{"ouvrir_discord"},
			ExpectedResult: "Discord ouvert"},
		{Name: "app_obs", Category: "app", Difficulty: "easy",
			Description: "Lancement d'OBS",
			VoiceInput:  "lance obs", Expected: []string{"ouvrir_obs"},
			ExpectedResult: "OBS lance"},
		{Name: "app_inconnue_generique", Category: "app", Difficulty: "normal",
			Description: "Application hors catalogue via le declencheur generique",
			VoiceInput:  "ouvre notion", Expected: []string{"ouvrir_app"},
			ExpectedResult: "Tentative d'ouverture de 'notion'"},
		{Name: "app_task_manager", Category: "app", Difficulty: "easy",
			Description: "Ouverture du gestionnaire de taches",
			VoiceInput:  "gestionnaire de taches", Expected: []string{"ouvrir_task_manager"},
			ExpectedResult: "Gestionnaire de taches ouvert"},
		{Name: "app_terminal", Category: "app", Difficulty: "easy",
			Description: "Ouverture du terminal",
			VoiceInput:  "ouvre le terminal", Expected: []string{"ouvrir_terminal"},
			ExpectedResult: "Terminal ouvert"},

		// ── Media ───────────────────────────────────────────────────
		{Name: "media_volume_haut", Category: "media", Difficulty: "easy",
			Description: "Augmentation du volume",
			VoiceInput:  "monte le volume", Expected: []string{"volume_haut"},
			ExpectedResult: "Volume augmente"},
		{Name: "media_volume_bas", Category: "media", Difficulty: "easy",
			Description: "Baisse du son",
			VoiceInput:  "baisse le son", Expected: []string{"volume_bas"},
			ExpectedResult: "Volume baisse"},
		{Name: "media_muet", Category: "media", Difficulty: "easy",
			Description: "Coupure du son",
			VoiceInput:  "coupe le son", Expected: []string{"muet"},
			ExpectedResult: "Son coupe"},
		{Name: "media_suivant", Category: "media", Difficulty: "easy",
			Description: "Morceau suivant",
			VoiceInput:  "morceau suivant", Expected: []string{"media_next"},
			ExpectedResult: "Piste suivante"},
		{Name: "media_pause", Category: "media", Difficulty: "easy",
			Description: "Mise en pause",
			VoiceInput:  "mets en pause", Expected: []string{"media_play_pause"},
			ExpectedResult: "Lecture en pause"},

		// ── Fenetres & clipboard ────────────────────────────────────
		{Name: "fenetre_bureau", Category: "fenetre", Difficulty: "easy",
			Description: "Affichage du bureau",
			VoiceInput:  "montre le bureau", Expected: []string{"minimiser_tout"},
			ExpectedResult: "Bureau affiche"},
		{Name: "fenetre_plein_ecran", Category: "fenetre", Difficulty: "easy",
			Description: "Maximisation",
			VoiceInput:  "plein ecran", Expected: []string{"maximiser_fenetre"},
			ExpectedResult: "Fenetre maximisee"},
		{Name: "fenetre_gauche", Category: "fenetre", Difficulty: "easy",
			Description: "Snap a gauche",
			VoiceInput:  "mets a gauche", Expected: []string{"fenetre_gauche"},
			ExpectedResult: "Fenetre snappee a gauche"},
		{Name: "clipboard_tout_selectionner", Category: "clipboard", Difficulty: "easy",
			Description: "Selection globale",
			VoiceInput:  "selectionne tout", Expected: []string{"tout_selectionner"},
			ExpectedResult: "Tout selectionne"},
		{Name: "clipboard_sauvegarde", Category: "clipboard", Difficulty: "normal",
			Description: "Le mot sauvegarde seul vise le fichier actif, pas le backup",
			VoiceInput:  "sauvegarde", Expected: []string{"sauvegarder"},
			ExpectedResult: "Fichier sauvegarde"},

		// ── Systeme ─────────────────────────────────────────────────
		{Name: "sys_verrouiller", Category: "systeme", Difficulty: "easy",
			Description: "Verrouillage du poste, avec confirmation",
			VoiceInput:  "verrouille le pc", Expected: []string{"verrouiller"},
			ExpectedResult: "Demande de confirmation puis verrouillage"},
		{Name: "sys_eteindre", Category: "systeme", Difficulty: "easy",
			Description: "Extinction, avec confirmation",
			VoiceInput:  "eteins le pc", Expected: []string{"eteindre"},
			ExpectedResult: "Demande de confirmation puis extinction"},
		{Name: "sys_capture", Category: "systeme", Difficulty: "easy",
			Description: "Capture d'ecran",
			VoiceInput:  "capture ecran", Expected: []string{"capture_ecran"},
			ExpectedResult: "Capture prise"},
		{Name: "sys_info", Category: "systeme", Difficulty: "easy",
			Description: "Infos systeme",
			VoiceInput:  "info systeme", Expected: []string{"info_systeme"},
			ExpectedResult: "Infos systeme affichees"},
		{Name: "sys_processus", Category: "systeme", Difficulty: "easy",
			Description: "Liste des processus",
			VoiceInput:  "liste les processus", Expected: []string{"processus"},
			ExpectedResult: "Processus listes"},
		{Name: "sys_mode_nuit", Category: "systeme", Difficulty: "normal",
			Description: "Mode nuit, a ne pas confondre avec les skills mode_*",
			VoiceInput:  "mode nuit", Expected: []string{"mode_nuit"},
			ExpectedResult: "Mode nuit active"},
		{Name: "sys_bluetooth", Category: "systeme", Difficulty: "easy",
			Description: "Activation du Bluetooth",
			VoiceInput:  "active le bluetooth", Expected: []string{"bluetooth_on"},
			ExpectedResult: "Bluetooth active"},
		{Name: "sys_veille", Category: "systeme", Difficulty: "easy",
			Description: "Mise en veille",
			VoiceInput:  "mise en veille", Expected: []string{"veille"},
			ExpectedResult: "PC en veille"},

		// ── Dev & trading ───────────────────────────────────────────
		{Name: "dev_git_status", Category: "dev", Difficulty: "easy",
			Description: "Statut Git",
			VoiceInput:  "statut git", Expected: []string{"git_status"},
			ExpectedResult: "git status affiche"},
		{Name: "dev_docker_ps", Category: "dev", Difficulty: "easy",
			Description: "Conteneurs Docker",
			VoiceInput:  "docker ps", Expected: []string{"docker_ps"},
			ExpectedResult: "Conteneurs listes"},
		{Name: "trading_scanner", Category: "trading", Difficulty: "easy",
			Description: "Scan du marche",
			VoiceInput:  "scanne le marche", Expected: []string{"scanner_marche"},
			ExpectedResult: "Scanner MEXC lance"},
		{Name: "trading_breakout", Category: "trading", Difficulty: "easy",
			Description: "Detection de breakouts",
			VoiceInput:  "detecte les breakouts", Expected: []string{"detecter_breakout"},
			ExpectedResult: "Detecteur lance"},
		{Name: "trading_sniper", Category: "trading", Difficulty: "normal",
			Description: "Sniper breakout, avec confirmation",
			VoiceInput:  "lance le sniper", Expected: []string{"sniper_breakout"},
			ExpectedResult: "Demande de confirmation puis sniper"},
		{Name: "trading_cluster", Category: "trading", Difficulty: "easy",
			Description: "Statut du cluster IA",
			VoiceInput:  "statut du cluster", Expected: []string{"statut_cluster"},
			ExpectedResult: "Statut cluster affiche"},
		{Name: "trading_consensus", Category: "trading", Difficulty: "normal",
			Description: "Consensus multi-IA parametre",
			VoiceInput:  "consensus sur le bitcoin", Expected: []string{"consensus_ia"},
			ExpectedResult: "Consensus sur 'le bitcoin'"},

		// ── Controle assistant ──────────────────────────────────────
		{Name: "assistant_aide", Category: "assistant", Difficulty: "easy",
			Description: "Demande d'aide",
			VoiceInput:  "aide", Expected: []string{"majordome_aide"},
			ExpectedResult: "Liste des commandes"},
		{Name: "assistant_stop", Category: "assistant", Difficulty: "easy",
			Description: "Arret de l'assistant",
			VoiceInput:  "stop", Expected: []string{"majordome_stop"},
			ExpectedResult: "Assistant arrete"},

		// ── Corrections STT ─────────────────────────────────────────
		{Name: "correction_crome", Category: "correction", Difficulty: "hard",
			Description: "STT retourne 'crome' au lieu de 'chrome'",
			VoiceInput:  "ouvres crome", Expected: []string{"ouvrir_chrome"},
			ExpectedResult: "Correction puis Chrome ouvert"},
		{Name: "correction_gougueule", Category: "correction", Difficulty: "hard",
			Description: "STT retourne 'gougueule' au lieu de 'google'",
			VoiceInput:  "va sur gougueule", Expected: []string{"aller_sur_site"},
			ExpectedResult: "Correction puis navigation Google"},
		{Name: "correction_youtub", Category: "correction", Difficulty: "hard",
			Description: "STT retourne 'youtub' au lieu de 'youtube'",
			VoiceInput:  "ouvre youtub", Expected: []string{"ouvrir_youtube"},
			ExpectedResult: "Correction puis YouTube ouvert"},
		{Name: "correction_vis_code", Category: "correction", Difficulty: "hard",
			Description: "STT retourne 'vis code' au lieu de 'vscode'",
			VoiceInput:  "ouvre vis code", Expected: []string{"ouvrir_vscode"},
			ExpectedResult: "Correction puis VSCode ouvert"},
		{Name: "correction_lm_studio", Category: "correction", Difficulty: "hard",
			Description: "STT epelle 'el m studio'",
			VoiceInput:  "lance el m studio", Expected: []string{"ouvrir_lmstudio"},
			ExpectedResult: "Correction puis LM Studio lance"},
		{Name: "correction_snipeur", Category: "correction", Difficulty: "hard",
			Description: "STT francise 'sniper' en 'snipeur'",
			VoiceInput:  "lance le snipeur", Expected: []string{"sniper_breakout"},
			ExpectedResult: "Correction puis sniper lance"},
		{Name: "correction_verouille", Category: "correction", Difficulty: "hard",
			Description: "STT retourne 'verouille' avec un seul r",
			VoiceInput:  "verouille le pc", Expected: []string{"verrouiller"},
			ExpectedResult: "Correction puis verrouillage"},
		{Name: "correction_scan", Category: "correction", Difficulty: "hard",
			Description: "STT tronque 'scanne' en 'scan'",
			VoiceInput:  "scan le marche", Expected: []string{"scanner_marche"},
			ExpectedResult: "Correction puis scanner lance"},

		// ── Ambiguites assumees ─────────────────────────────────────
		{Name: "ambigu_gmail", Category: "ambigu", Difficulty: "normal",
			Description: "gmail est a la fois un site connu et une app generique",
			VoiceInput:  "ouvre gmail", Expected: []string{"ouvrir_gmail", "ouvrir_app"},
			ExpectedResult: "Gmail ouvert par l'une ou l'autre voie"},
		{Name: "ambigu_musique_app", Category: "ambigu", Difficulty: "normal",
			Description: "Lancer la musique peut viser Spotify ou le mode musique",
			VoiceInput:  "lance la musique", Expected: []string{"ouvrir_spotify", "mode_musique"},
			ExpectedResult: "Musique lancee"},
		{Name: "ambigu_musique_mets", Category: "ambigu", Difficulty: "normal",
			Description: "Variante 'mets de la musique'",
			VoiceInput:  "mets de la musique", Expected: []string{"ouvrir_spotify", "mode_musique"},
			ExpectedResult: "Musique lancee"},
		{Name: "ambigu_backup", Category: "ambigu", Difficulty: "normal",
			Description: "Un backup demande doit viser la skill, pas ctrl+s",
			VoiceInput:  "lance un backup", Expected: []string{"backup_rapide"},
			ExpectedResult: "Skill backup_rapide lancee"},
		{Name: "ambigu_sauvegarde_docs", Category: "ambigu", Difficulty: "hard",
			Description: "Sauvegarder les documents vise la skill de backup",
			VoiceInput:  "sauvegarde mes documents", Expected: []string{"backup_rapide"},
			ExpectedResult: "Skill backup_rapide lancee"},

		// ── Robustesse au bruit ─────────────────────────────────────
		{Name: "robuste_politesse_prefixe", Category: "robustesse", Difficulty: "normal",
			Description: "Preambule de politesse avant la commande",
			VoiceInput:  "s'il te plait ouvre chrome maintenant", Expected: []string{"ouvrir_chrome"},
			ExpectedResult: "Chrome ouvert malgre le preambule"},
		{Name: "robuste_mot_insere", Category: "robustesse", Difficulty: "hard",
			Description: "Mot parasite au milieu du declencheur",
			VoiceInput:  "ouvre moi chrome", Expected: []string{"ouvrir_chrome", "ouvrir_app"},
			ExpectedResult: "Chrome ouvert malgre l'insertion"},
		{Name: "robuste_requete_enrobee", Category: "robustesse", Difficulty: "hard",
			Description: "Recherche enrobee dans une phrase complete",
			VoiceInput:  "il faut que tu cherches la capitale du japon", Expected: []string{"chercher_google"},
			ExpectedResult: "Recherche extraite de la phrase"},
	}
}
