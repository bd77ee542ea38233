package hilite

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render bracket-coded semantic highlights"
	MsgRenderShort     = "Render annotated text as highlighted output"
	MsgSanitizeShort   = "Repair malformed and invented codes"
	MsgSanitizeLong    = "Sanitize removes invented codes such as [GREEN] and unmatched tags, leaving valid codes and fenced code blocks intact."
	MsgStripShort      = "Remove all highlight codes"
	MsgStripLong       = "Strip removes every valid highlight tag, keeping the text between them. Fenced code blocks are left untouched."
	MsgCodesShort      = "List the highlight codes used in a document"
	MsgPalettesShort   = "List available palettes with their colors"
	MsgLegendShort     = "Show what each highlight code means"
	MsgConfigShort     = "Print the effective configuration"
	MsgConfigLong      = "Print the configuration after merging defaults, config files, environment variables and flags."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Output messages
	MsgVersionFormat = "hilite version %s\n  commit: %s\n  built:  %s\n"
	MsgNoCodes       = "No highlight codes found."
	MsgNoChanges     = "Nothing to sanitize."
	MsgConfigSources = "# sources: %s\n"
	MsgManWritten    = "Man pages written to %s\n"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrReadInput   = "failed to read input %s"
	MsgErrWriteOutput = "failed to write output %s"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Config file to use instead of the user config"
	MsgFlagMode       = "Highlight mode: highlights, underline, both, none"
	MsgFlagPalette    = "Palette name"
	MsgFlagFormat     = "Output format: auto, html, term, text, json"
	MsgFlagClass      = "CSS class for the HTML container"
	MsgFlagInline     = "Wrap HTML output in a span instead of a div"
	MsgFlagNoMarkdown = "Do not convert **bold**, *italic* and `code`"
	MsgFlagOutput     = "Write output to a file instead of stdout"
	MsgFlagDiff       = "Show a unified diff of the changes instead of the result"
	MsgFlagRaw        = "Print the legend as markdown without terminal styling"
	MsgFlagManDir     = "Directory to write man pages to"
	MsgFlagDefaults   = "Print the built-in defaults instead of the effective configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	MsgCompletionLong = `To load completions:

Bash:
  $ source <(hilite completion bash)

Zsh:
  $ hilite completion zsh > "${fpath[1]}/_hilite"

Fish:
  $ hilite completion fish | source

PowerShell:
  PS> hilite completion powershell | Out-String | Invoke-Expression`
)
