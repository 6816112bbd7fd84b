package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"storyseek/internal/app"
	"storyseek/internal/domain"
	"storyseek/internal/stories"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("storyprint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts, err := app.ParseFlags(fs, args, false)
	if err != nil {
		return 2
	}
	// An explicit term is a one-off and must not replace the saved one
	opts.NoPersist = opts.TermSet

	cfg, _ := app.LoadConfig(opts, nil, false)
	closeLog := app.SetupLogging(cfg.LogFile)
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	core := app.New(cfg, opts, nil, app.NewClient(cfg))
	core.Fetcher.Run(ctx, core.Query.Current())

	state := core.Stories.State()
	if state.IsError {
		fmt.Fprintln(stderr, errorStyle.Render("Something went wrong ..."))
		log.Printf("storyprint: search for %q failed", core.Query.Term())
		return 1
	}
	if len(state.Data) == 0 {
		fmt.Fprintf(stdout, "No stories for %q\n", core.Query.Term())
		return 0
	}

	fmt.Fprintln(stdout, render(state, cfg.UI.ShowURL))
	return 0
}

// render lays the stories out as a bordered table
func render(state stories.State, showURL bool) string {
	headers := []string{"Article"}
	if showURL {
		headers = append(headers, "URL")
	}
	headers = append(headers, "Author", "Total Comments", "Points")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= len(headers)-2:
				return numberStyle
			default:
				return cellStyle
			}
		})

	for _, s := range state.Data {
		t.Row(row(s, showURL)...)
	}
	return t.Render()
}

func row(s domain.Story, showURL bool) []string {
	cells := []string{s.DisplayTitle()}
	if showURL {
		cells = append(cells, s.URL)
	}
	return append(cells, s.Author, strconv.Itoa(s.NumComments), strconv.Itoa(s.Points))
}
