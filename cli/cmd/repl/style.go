package repl

import "github.com/charmbracelet/lipgloss"

func fg(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// ANSI palette indices, so the editor follows the terminal theme.
var (
	evalPromptStyle = fg("6").Bold(true)
	ctrlPromptStyle = fg("5").Bold(true)
	echoStyle       = fg("15")
	resultStyle     = fg("2")
	errorStyle      = fg("1")
	hintStyle       = fg("8")
	hintBoldStyle   = hintStyle.Bold(true)

	candidateStyle      = fg("4")
	candidateMatchStyle = fg("4").Bold(true)
	selectedStyle       = fg("0").Background(lipgloss.Color("4"))
	selectedMatchStyle  = selectedStyle.Bold(true)

	signatureStyle     = hintStyle
	signatureNameStyle = fg("6").Bold(true)
	currentParamStyle  = fg("11").Bold(true)
)
