package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/probehq/domsim/pkg/dom"
	"github.com/probehq/domsim/pkg/interact"
	"github.com/probehq/domsim/pkg/query"
)

var (
	delayMs int
	trace   bool
	verbose bool
)

// Action is a single scripted gesture.
type Action struct {
	Type     string   `json:"action"`             // click, dblclick, rightclick, hover, unhover, type, keyboard, clear, paste, select, deselect, tab, focus, blur
	Selector string   `json:"selector,omitempty"` // CSS selector for the target element
	Text     string   `json:"text,omitempty"`     // Text for type/keyboard/paste
	Values   []string `json:"values,omitempty"`   // Option values for select/deselect
	Shift    bool     `json:"shift,omitempty"`    // Shift modifier for tab
}

func main() {
	// Load .env file if present (silently ignore if not found)
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "domsim <page.html> <scenario.json>",
		Short: "Replay scripted user gestures against an HTML page",
		Long: `domsim parses an HTML page into a simulated DOM, replays a JSON
scenario of user gestures against it, and reports the resulting state.

Example:
  domsim login.html scenario.json --trace`,
		Args: cobra.ExactArgs(2),
		RunE: run,
	}

	rootCmd.Flags().IntVar(&delayMs, "delay", envInt("DOMSIM_DELAY", 0), "Inter-keystroke delay (ms)")
	rootCmd.Flags().BoolVar(&trace, "trace", os.Getenv("DOMSIM_TRACE") != "", "Log every dispatched event")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed progress")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func run(cmd *cobra.Command, args []string) error {
	pagePath, scenarioPath := args[0], args[1]

	page, err := os.Open(pagePath)
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	doc, err := dom.ParseDocument(page)
	if err != nil {
		return fmt.Errorf("parse page: %w", err)
	}

	raw, err := os.ReadFile(scenarioPath)
	if err != nil {
		return fmt.Errorf("read scenario: %w", err)
	}
	var actions []Action
	if err := json.Unmarshal(raw, &actions); err != nil {
		return fmt.Errorf("parse scenario: %w", err)
	}

	query.SetDefaultDocument(doc)
	q := query.Use(doc.Root())

	var logger *slog.Logger
	if trace {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	session := interact.New(interact.Options{
		Delay:    time.Duration(delayMs) * time.Millisecond,
		Document: doc,
		Logger:   logger,
	})

	fmt.Printf("→ Replaying %d actions against %s\n", len(actions), pagePath)
	for i, action := range actions {
		if verbose {
			fmt.Printf("  [%d/%d] %s %s", i+1, len(actions), action.Type, action.Selector)
		}
		if err := runAction(session, q, action); err != nil {
			if verbose {
				fmt.Printf(" ✗ (%v)\n", err)
			}
			return fmt.Errorf("action %d (%s): %w", i+1, action.Type, err)
		}
		if verbose {
			fmt.Println(" ✓")
		}
	}
	fmt.Println("✓ Scenario completed")
	return nil
}

func runAction(session *interact.Session, q *query.Queries, action Action) error {
	target := func() (*dom.Element, error) {
		if action.Selector == "" {
			return nil, fmt.Errorf("action %q needs a selector", action.Type)
		}
		return q.BySelector(action.Selector)
	}

	switch action.Type {
	case "keyboard":
		return session.Keyboard(action.Text)
	case "tab":
		return session.Tab(interact.TabOptions{Shift: action.Shift})
	}

	el, err := target()
	if err != nil {
		return err
	}
	switch action.Type {
	case "click":
		return session.Click(el)
	case "dblclick":
		return session.DblClick(el)
	case "rightclick":
		return session.RightClick(el)
	case "hover":
		return session.Hover(el)
	case "unhover":
		return session.Unhover(el)
	case "type":
		return session.Type(el, action.Text)
	case "clear":
		return session.Clear(el)
	case "paste":
		return session.Paste(el, action.Text)
	case "select":
		return session.SelectOptions(el, action.Values...)
	case "deselect":
		return session.DeselectOptions(el, action.Values...)
	case "focus":
		return session.Focus(el)
	case "blur":
		return session.Blur(el)
	default:
		return fmt.Errorf("unknown action type: %s", action.Type)
	}
}
