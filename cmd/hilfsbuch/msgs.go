package hilfsbuch

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A C++ reference book for the terminal"
	MsgShowShort       = "Show one or more topics"
	MsgListShort       = "List all topics by category"
	MsgListLong        = "List prints every topic with its name and title, grouped by category. Topics marked with * pause after they are shown."
	MsgSearchShort     = "Search topics by title, category or text"
	MsgSearchLong      = "Search matches the query against topic titles, names and categories, then against the text of each topic. Matching ignores case and accents."
	MsgExportShort     = "Export topics as JSON, YAML, XML or markdown"
	MsgMenuShort       = "Open the interactive topic menu"
	MsgMenuLong        = "Menu lists the topics by category and shows the one you pick. It also offers a search entry. Choose Beenden to leave."
	MsgGenConfigShort  = "Print the default configuration"
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"
	MsgHelpShort       = "Help about any command or topic"

	// Output
	MsgSearchHeader  = "Suchergebnisse für: %q\n"
	MsgSearchHit     = "  %s  %s (%s)\n"
	MsgNoHits        = "Keine Treffer gefunden."
	MsgGatedLegend   = "* pausiert nach dem Thema"
	MsgExported      = "Exported %s to %s\n"
	MsgConfigWritten = "Wrote default configuration to %s\n"
	MsgConfigExists  = "Config file %s already exists, not overwritten\n"
	MsgGatePrompt    = "\n(Weiter mit beliebiger Eingabe) > "
	MsgTopicsHeader  = "Available topics:"
	MsgTopicsFooter  = "\nUse 'hilfsbuch help <topic>' to read a topic."

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrEmptyQuery = "search query is empty"
	MsgErrNeedsTTY   = "the menu needs an interactive terminal"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/hilfsbuch/config.toml)"
	MsgFlagFormat  = "Output format (plain, styled, markdown, auto)"
	MsgFlagNoGate  = "Do not pause after gated topics"
	MsgFlagLimit   = "Maximum number of results (0 uses the configured limit)"
	MsgFlagExport  = "Export format (json, yaml, xml, md)"
	MsgFlagOutput  = "Write to this file instead of standard output"
	MsgFlagWrite   = "Write the configuration file instead of printing it"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/show-long.txt
	msgShowLongRaw string
	MsgShowLong    = strings.TrimSpace(msgShowLongRaw)

	//go:embed msgs/show-example.txt
	msgShowExampleRaw string
	MsgShowExample    = strings.TrimRight(msgShowExampleRaw, "\n")

	//go:embed msgs/search-example.txt
	msgSearchExampleRaw string
	MsgSearchExample    = strings.TrimRight(msgSearchExampleRaw, "\n")

	//go:embed msgs/export-long.txt
	msgExportLongRaw string
	MsgExportLong    = strings.TrimSpace(msgExportLongRaw)

	//go:embed msgs/export-example.txt
	msgExportExampleRaw string
	MsgExportExample    = strings.TrimRight(msgExportExampleRaw, "\n")

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
