// Package main provides the CLI entrypoint for kanatype.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/kanatype/internal/config"
	"github.com/verte-zerg/kanatype/internal/generator"
	"github.com/verte-zerg/kanatype/internal/i18n"
	"github.com/verte-zerg/kanatype/internal/kana"
	"github.com/verte-zerg/kanatype/internal/keyboard"
	"github.com/verte-zerg/kanatype/internal/layout"
	"github.com/verte-zerg/kanatype/internal/model"
	"github.com/verte-zerg/kanatype/internal/session"
	"github.com/verte-zerg/kanatype/internal/store"
	"github.com/verte-zerg/kanatype/internal/table"
	"github.com/verte-zerg/kanatype/internal/tui"
	"github.com/verte-zerg/kanatype/internal/wordlist"
)

const (
	sourceFile = "file"
	sourceDB   = "db"

	defaultTermWidth = 80
)

var (
	practiceLayout   string
	practiceWordList string
	practiceSource   string
	practiceUILang   string
	practiceDebug    bool

	keyboardLayout string
	keyboardMark   string
	keyboardWidth  int

	wordsAll     bool
	wordsReading string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "kanatype",
		Short:         "Kana typing tutor",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceLayout, "layout", layout.DefaultID, "keyboard layout id")
	rootCmd.Flags().StringVar(&practiceWordList, "wordlist", config.DefaultWordListPath(), "JSON word list path")
	rootCmd.Flags().StringVar(&practiceSource, "source", sourceFile, "word source: file or db")
	rootCmd.Flags().StringVar(&practiceUILang, "ui-lang", "en", "interface language (en, ja)")
	rootCmd.Flags().BoolVar(&practiceDebug, "debug", false, "write a debug log to the data directory")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLayoutsCmd())
	rootCmd.AddCommand(newKeyboardCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "layout", &practiceLayout, fileCfg.Practice.Layout)
	applyStringConfig(cmd, "wordlist", &practiceWordList, fileCfg.Practice.WordList)
	applyStringConfig(cmd, "source", &practiceSource, fileCfg.Practice.Source)
	applyStringConfig(cmd, "ui-lang", &practiceUILang, fileCfg.Practice.UILang)

	cfg := model.Config{
		Layout:       practiceLayout,
		WordListPath: practiceWordList,
		Source:       practiceSource,
		UILang:       practiceUILang,
		Theme:        themeConfig(fileCfg.Theme),
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	if practiceDebug {
		logPath := config.DefaultLogPath()
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := tea.LogToFile(logPath, "kanatype")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				logErrf("failed to close debug log: %v\n", cerr)
			}
		}()
	} else {
		log.SetOutput(io.Discard)
	}

	lyt, err := loadLayout(cfg.Layout)
	if err != nil {
		return err
	}
	entries, err := loadEntries(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	warnCoverage(entries, lyt)
	log.Printf("layout %s, %d words from %s", lyt.ID(), len(entries), cfg.Source)

	loc, err := i18n.New(cfg.UILang)
	if err != nil {
		return err
	}
	sess, err := session.New(entries, generator.New())
	if err != nil {
		return err
	}

	renderer := keyboard.NewRenderer(theme(cfg.Theme))
	m := tui.NewModel(sess, lyt, renderer, loc)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func loadLayout(id string) (*layout.Layout, error) {
	reg, err := layout.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in layouts: %w", err)
	}
	if _, err := layout.LoadDir(reg, config.DefaultLayoutDir()); err != nil {
		return nil, fmt.Errorf("failed to load custom layouts: %w", err)
	}
	return reg.Get(id)
}

func loadEntries(ctx context.Context, cfg model.Config) ([]model.WordEntry, error) {
	if cfg.Source == sourceDB {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			return nil, fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		entries, err := st.ActiveEntries(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load word bank: %w", err)
		}
		if len(entries) == 0 {
			return nil, fmt.Errorf("word bank has no enabled words; import some with: kanatype words import <file>: %w", wordlist.ErrEmptyWordList)
		}
		return entries, nil
	}

	entries, err := wordlist.LoadWords(cfg.WordListPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load word list %s: %w", cfg.WordListPath, err)
	}
	return entries, nil
}

func warnCoverage(entries []model.WordEntry, l *layout.Layout) {
	readings := make([]string, len(entries))
	for i, e := range entries {
		readings[i] = e.Reading
	}
	if missing := kana.MissingVoiced(readings); len(missing) > 0 {
		logErrf("warning: voiced kana without a base key mapping: %s\n", string(missing))
	}
	if bad := wordlist.NonKana(entries); len(bad) > 0 {
		logErrf("warning: %d readings contain non-kana characters (first: %s◴%s)\n", len(bad), bad[0].Word, bad[0].Reading)
	}
	if missing := session.MissingLabels(entries, l.Labels()); len(missing) > 0 {
		logErrf("warning: layout %s has no key for: %s\n", l.ID(), strings.Join(missing, " "))
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLayoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List keyboard layouts",
		Args:  cobra.NoArgs,
		RunE:  runLayoutsCmd,
	}
}

func runLayoutsCmd(cmd *cobra.Command, _ []string) error {
	reg, err := layout.NewRegistry()
	if err != nil {
		return fmt.Errorf("failed to load built-in layouts: %w", err)
	}
	if _, err := layout.LoadDir(reg, config.DefaultLayoutDir()); err != nil {
		return fmt.Errorf("failed to load custom layouts: %w", err)
	}
	rows := make([][]string, 0, len(reg.IDs()))
	for _, id := range reg.IDs() {
		l, err := reg.Get(id)
		if err != nil {
			return err
		}
		origin := "custom"
		if reg.IsBuiltin(id) {
			origin = "built-in"
		}
		rows = append(rows, []string{
			id,
			strconv.FormatFloat(l.Width(), 'f', -1, 64),
			strconv.Itoa(l.Height()),
			origin,
		})
	}
	return writeLines(cmd, table.Format([]string{"ID", "Width", "Rows", "Origin"}, rows, map[int]bool{1: true, 2: true}))
}

func newKeyboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keyboard",
		Short: "Print a keyboard layout",
		Args:  cobra.NoArgs,
		RunE:  runKeyboardCmd,
	}
	cmd.Flags().StringVar(&keyboardLayout, "layout", layout.DefaultID, "keyboard layout id")
	cmd.Flags().StringVar(&keyboardMark, "mark", "", "label to highlight")
	cmd.Flags().IntVar(&keyboardWidth, "width", 0, "output width in columns (default: terminal width)")
	return cmd
}

func runKeyboardCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "layout", &keyboardLayout, fileCfg.Practice.Layout)
	lyt, err := loadLayout(keyboardLayout)
	if err != nil {
		return err
	}

	width := keyboardWidth
	if width < 0 {
		return fmt.Errorf("--width must be >= 0")
	}
	if width == 0 {
		width = terminalWidth()
	}
	rows := tui.KeyboardRows(lyt, width)
	renderer := keyboard.NewRenderer(theme(themeConfig(fileCfg.Theme)))
	out := tui.RenderKeyboard(renderer, lyt, keyboardMark, width, rows)
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage the word bank",
	}

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a JSON word list into the word bank",
		Args:  cobra.ExactArgs(1),
		RunE:  runWordsImportCmd,
	}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List words in the word bank",
		Args:  cobra.NoArgs,
		RunE:  runWordsListCmd,
	}
	listCmd.Flags().BoolVar(&wordsAll, "all", false, "include disabled words")
	statusCmd := &cobra.Command{
		Use:   "status <word> <status>",
		Short: "Set the inclusion status of a word (> 0 enables it)",
		Args:  cobra.ExactArgs(2),
		RunE:  runWordsStatusCmd,
	}
	statusCmd.Flags().StringVar(&wordsReading, "reading", "", "only update this reading")

	cmd.AddCommand(importCmd, listCmd, statusCmd)
	return cmd
}

func openStore() (*store.Store, func(), error) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	return st, func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}, nil
}

func runWordsImportCmd(cmd *cobra.Command, args []string) error {
	records, err := wordlist.LoadRecords(args[0])
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	bank := make([]model.WordRecord, 0, len(records))
	for _, rec := range records {
		entry, err := rec.Split()
		if err != nil {
			return err
		}
		bank = append(bank, model.WordRecord{Word: entry.Word, Reading: entry.Reading, Status: bankStatus(rec.Status)})
	}

	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()
	if err := st.ImportWords(cmd.Context(), bank); err != nil {
		return fmt.Errorf("failed to import words: %w", err)
	}
	logErrf("Imported %d words\n", len(bank))
	return nil
}

// bankStatus converts a word list status to the word bank's integer status
// without flipping whether the word is enabled.
func bankStatus(status float64) int {
	switch {
	case status > 0:
		return max(1, int(status))
	case status < 0:
		return min(-1, int(status))
	default:
		return 0
	}
}

func runWordsListCmd(cmd *cobra.Command, _ []string) error {
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()
	records, err := st.ListWords(cmd.Context(), wordsAll)
	if err != nil {
		return fmt.Errorf("failed to list words: %w", err)
	}
	if len(records) == 0 {
		logErrln("No words found. Import with: kanatype words import <file>")
		return nil
	}
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = []string{rec.Word, rec.Reading, strconv.Itoa(rec.Status)}
	}
	return writeLines(cmd, table.Format([]string{"Word", "Reading", "Status"}, rows, map[int]bool{2: true}))
}

func runWordsStatusCmd(cmd *cobra.Command, args []string) error {
	status, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid status %q: %w", args[1], err)
	}
	st, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()
	if err := st.SetStatus(cmd.Context(), args[0], wordsReading, status); err != nil {
		return fmt.Errorf("failed to set status of %s: %w", args[0], err)
	}
	return nil
}

func writeLines(cmd *cobra.Command, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func themeConfig(fc config.ThemeConfig) model.ThemeConfig {
	def := keyboard.DefaultTheme()
	pick := func(value *string, fallback string) string {
		if value == nil {
			return fallback
		}
		return *value
	}
	return model.ThemeConfig{
		Background:    pick(fc.Background, def.Background),
		Base:          pick(fc.Base, def.Base),
		KeyFill:       pick(fc.KeyFill, def.KeyFill),
		HighlightFill: pick(fc.HighlightFill, def.HighlightFill),
		Text:          pick(fc.Text, def.Text),
	}
}

func theme(tc model.ThemeConfig) keyboard.Theme {
	return keyboard.Theme{
		Background:    tc.Background,
		Base:          tc.Base,
		KeyFill:       tc.KeyFill,
		HighlightFill: tc.HighlightFill,
		Text:          tc.Text,
	}
}

func defaultConfigTemplate() string {
	def := keyboard.DefaultTheme()
	return fmt.Sprintf(`# kanatype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# layout = %q               # Keyboard layout id (see: kanatype layouts)
# wordlist = %q
# source = %q               # Word source: "file" (wordlist) or "db" (word bank)
# ui-lang = "en"              # Interface language: en, ja

[theme]
# background = %q
# base = %q
# key = %q
# highlight = %q
# text = %q
`,
		layout.DefaultID,
		config.DefaultWordListPath(),
		sourceFile,
		def.Background,
		def.Base,
		def.KeyFill,
		def.HighlightFill,
		def.Text,
	)
}

func validateConfig(cfg model.Config) error {
	if strings.TrimSpace(cfg.Layout) == "" {
		return fmt.Errorf("--layout must not be empty")
	}
	switch cfg.Source {
	case sourceFile:
		if strings.TrimSpace(cfg.WordListPath) == "" {
			return fmt.Errorf("--wordlist must not be empty")
		}
	case sourceDB:
	default:
		return fmt.Errorf("--source must be %q or %q", sourceFile, sourceDB)
	}
	for name, color := range map[string]string{
		"background": cfg.Theme.Background,
		"base":       cfg.Theme.Base,
		"key":        cfg.Theme.KeyFill,
		"highlight":  cfg.Theme.HighlightFill,
		"text":       cfg.Theme.Text,
	} {
		if color == "" {
			return fmt.Errorf("theme %s color must not be empty", name)
		}
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
