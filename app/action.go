package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/focusquest/internal/config"
	"github.com/ayoisaiah/focusquest/internal/osutil"
	"github.com/ayoisaiah/focusquest/internal/timer"
	"github.com/ayoisaiah/focusquest/internal/timeutil"
	"github.com/ayoisaiah/focusquest/notify"
	"github.com/ayoisaiah/focusquest/store"
	"github.com/ayoisaiah/focusquest/tui"
)

const (
	envNoColor           = "NO_COLOR"
	envFocusQuestNoColor = "FOCUSQUEST_NO_COLOR"
)

var errImportArgs = errors.New("import expects exactly one file argument")

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// openStore loads the configuration and opens the database.
func openStore(ctx *cli.Context) (*config.Config, *store.Client, error) {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return nil, nil, err
	}

	return cfg, db, nil
}

// defaultAction starts the timer.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	l, closer := setupLogger(cfg)
	defer closer.Close()

	db, err := store.NewClient(cfg.System.DBPath)
	if err != nil {
		return err
	}

	defer db.Close()

	toasts := tui.NewToasts(time.Now)
	notifiers := notify.Multi{toasts}

	if desktop := desktopNotifier(cfg, l); desktop != nil {
		notifiers = append(notifiers, desktop)

		defer desktop.Wait()
	}

	g := newGame(cfg, db, notifiers, l)
	defer g.Close()

	ticker := timer.NewTicker(time.Second)
	ticker.Start(ctx.Context)

	defer ticker.Stop()

	m := tui.New(&tui.Options{
		Game:              g,
		Ticker:            ticker,
		Toasts:            toasts,
		Logger:            l,
		Styles:            tui.NewStyles(cfg),
		LongBreakInterval: cfg.Settings.LongBreakInterval,
		Debug:             ctx.Bool("debug"),
		TwentyFourHour:    cfg.Display.TwentyFourHour,
	})

	l.InfoContext(ctx.Context, "starting focusquest", slog.String("version", config.Version))

	_, err = tea.NewProgram(m).Run()

	return err
}

// statusAction prints the character and the saved timer.
func statusAction(ctx *cli.Context) error {
	cfg, db, err := openStore(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	g := newGame(cfg, db, nil, slog.Default())

	printStatus(os.Stdout, g.Snapshot(), cfg.Settings.LongBreakInterval)

	return nil
}

// mapAction prints the location catalog.
func mapAction(ctx *cli.Context) error {
	cfg, db, err := openStore(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	g := newGame(cfg, db, nil, slog.Default())

	printMap(os.Stdout, g.Snapshot().Locations)

	return nil
}

// statsAction prints the statistics counters.
func statsAction(ctx *cli.Context) error {
	cfg, db, err := openStore(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	snap := newGame(cfg, db, nil, slog.Default()).Snapshot()

	if ctx.Bool("json") {
		b, err := json.Marshal(newStatsReport(&snap))
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	printStats(os.Stdout, &snap)

	return nil
}

// historyAction lists the completed sessions since the --since time.
func historyAction(ctx *cli.Context) error {
	now := time.Now()

	since, err := timeutil.FromStr(ctx.String("since"), now)
	if err != nil {
		return err
	}

	_, db, err := openStore(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	sessions, err := db.GetSessions(since, now)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(sessions)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(os.Stdout, sessions)

	return nil
}

// resetProgressAction discards the progression and statistics after
// confirmation.
func resetProgressAction(ctx *cli.Context) error {
	cfg, db, err := openStore(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	confirmed := ctx.Bool("yes")

	if !confirmed {
		err = huh.NewConfirm().
			Title("Reset your ninja to level 1?").
			Description("Your level, exp, unlocked locations, and statistics will be lost.").
			Affirmative("Reset").
			Negative("Cancel").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
	}

	if !confirmed {
		pterm.Info.Println("Nothing was changed")
		return nil
	}

	newGame(cfg, db, nil, slog.Default()).ResetProgress()

	pterm.Success.Println("Progress reset. Your journey begins again in Konoha Village")

	return nil
}

// importAction replaces the saved record with the contents of a file.
func importAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errImportArgs
	}

	f, err := os.Open(ctx.Args().First())
	if err != nil {
		return err
	}

	defer f.Close()

	_, db, err := openStore(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	r, err := store.ImportRecord(db, f)
	if err != nil {
		return err
	}

	pterm.Success.Printfln(
		"Imported a level %d ninja with %d completed sessions",
		r.Level,
		r.TotalSessions,
	)

	return nil
}

// exportAction prints the saved record.
func exportAction(ctx *cli.Context) error {
	_, db, err := openStore(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	r, err := db.LoadRecord()
	if err != nil {
		return err
	}

	b, err := r.Encode()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, string(b))

	return err
}

// editConfigAction opens the config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	paths, err := config.ResolvePaths()
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, paths.ConfigPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	if _, exists := os.LookupEnv(envFocusQuestNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
