package report

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// 📊 Summary captures counters from a completed scan
type Summary struct {
	Walked  int           // Regular files considered
	Read    int           // Files whose content was read and decoded
	Matched int           // Files whose content matched the pattern
	Elapsed time.Duration // Wall time of the traversal
}

// 📝 FormatSummary formats the counters on one line
func FormatSummary(s Summary) string {
	return fmt.Sprintf("%s files walked, %s read, %s matched in %s",
		color.New(color.FgCyan).Sprintf("%d", s.Walked),
		color.New(color.FgYellow).Sprintf("%d", s.Read),
		color.New(color.FgGreen).Sprintf("%d", s.Matched),
		color.New(color.Faint).Sprint(s.Elapsed.Round(time.Millisecond)))
}

// 📢 PrintSummary prints the scan summary to the terminal. This is verbose
// UX only and never flows through a Sink, so file logs stay one path per
// line.
func PrintSummary(s Summary) {
	pterm.Success.WithPrefix(pterm.Prefix{Text: "🔍"}).Println("scan complete")
	fmt.Println(FormatSummary(s))
}
