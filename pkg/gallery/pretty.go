// Package gallery holds the shared photo data model plus small presentation and
// matching helpers used across the query engine and the CLI.
package gallery

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
)

var colorGreen = color.New(color.FgGreen).Add(color.Bold).SprintFunc()
var colorYellow = color.New(color.FgYellow).Add(color.Bold).SprintFunc()
var colorBlue = color.New(color.FgBlue).Add(color.Bold).SprintFunc()
var colorCyan = color.New(color.FgCyan).SprintFunc()
var colorMagenta = color.New(color.FgMagenta).Add(color.Bold).SprintFunc()

/**************************************************************************************************
** PrintPhotos renders a result list to stdout, one line per photo: index, title (or ID when
** untitled), play type / emotion when enriched, and the portfolio marker.
**
** @param header - Section header printed above the list
** @param photos - Photos to render, in result order
**************************************************************************************************/
func PrintPhotos(header string, photos []TPhoto) {
	fmt.Printf("%s (%d)\n", colorMagenta(header), len(photos))
	for i, p := range photos {
		label := p.Title
		if label == "" {
			label = p.ID
		}
		line := fmt.Sprintf("  %2d. %s", i+1, colorCyan(label))
		if p.Metadata != nil {
			tags := RemoveEmptyStrings([]string{p.Metadata.PlayType, p.Metadata.Emotion})
			if len(tags) > 0 {
				line += " " + colorBlue("["+strings.Join(tags, "/")+"]")
			}
			if p.Metadata.PortfolioWorthy {
				line += " " + colorGreen("★")
			}
		} else {
			line += " " + colorYellow("(unenriched)")
		}
		fmt.Println(line)
	}
}

/**************************************************************************************************
** PrintAnalytics renders the reporting wrapper of a search: type classification, elapsed
** time and match counts.
**
** @param a - Analytics record to render
**************************************************************************************************/
func PrintAnalytics(a TSearchAnalytics) {
	fmt.Printf("%s type=%s time=%.2fms matched=%d/%d\n",
		colorMagenta("[search]"),
		colorBlue(a.SearchType),
		a.SearchTimeMs,
		a.Metadata.MatchedPhotos,
		a.Metadata.TotalPhotos,
	)
}

/**************************************************************************************************
** PrintSuggestions renders search suggestions as a single comma-joined line.
**************************************************************************************************/
func PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		fmt.Println(colorYellow("no suggestions"))
		return
	}
	fmt.Printf("%s %s\n", colorMagenta("[suggest]"), colorCyan(strings.Join(suggestions, ", ")))
}

/**************************************************************************************************
** Dump disassembles a value and displays its structure and contents. Used by the CLI's
** verbose mode to expose full analytics and preference profiles.
**************************************************************************************************/
func Dump(variable ...interface{}) {
	spew.Config.Indent = "    "
	fmt.Printf("%s", colorYellow("----------------------------------\n"))
	for _, each := range variable {
		spew.Dump(each)
	}
	fmt.Printf("%s", colorYellow("----------------------------------\n"))
}
