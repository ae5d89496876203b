package main

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	dbsqlite "redline/internal/adapters/db/sqlite"
	"redline/internal/adapters/llm"
	"redline/internal/adapters/llm/gemini"
	"redline/internal/adapters/presets"
	"redline/internal/adapters/prompt"
	"redline/internal/adapters/report"
	apiapp "redline/internal/api/app"
	"redline/internal/domain"
	"redline/internal/i18n"
	"redline/internal/ports"
	"redline/internal/usecase/checker"
	"redline/internal/usecase/enhancer"
	"redline/internal/usecase/session"
)

//go:embed all:frontend/dist
var assets embed.FS

var rootCmd = &cobra.Command{
	Use:          "redline",
	Short:        "Grammar checking and style rewriting through Gemini, for the Linux desktop",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		initLogging()
		return nil
	},
	RunE: runGUI,
}

var checkCmd = &cobra.Command{
	Use:   "check [text]",
	Short: "Check grammar headlessly and print the report",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

var enhanceCmd = &cobra.Command{
	Use:   "enhance [text]",
	Short: "Rewrite text in a preset style headlessly and print the report",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEnhance,
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "data directory (default: OS config dir)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (trace, debug, info, warn, error)")
	if err := viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		panic(err)
	}

	// REDLINE_API_KEY, REDLINE_LOG_LEVEL, REDLINE_DATA.
	viper.SetEnvPrefix("redline")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.Flags().BoolP("check-selection", "s", false, "open as popup and check the PRIMARY selection (wl-paste)")
	rootCmd.Flags().String("check", "", "open as popup and check the given text")
	rootCmd.Flags().String("enhance", "", "open as popup and enhance the given text")

	for _, cmd := range []*cobra.Command{checkCmd, enhanceCmd} {
		cmd.Flags().BoolP("selection", "s", false, "read the text from the PRIMARY selection")
		cmd.Flags().String("lang", "", "explanation language key (chinese, english)")
		cmd.Flags().String("out", "", "write the report to a file (.txt, .md, .html)")
	}
	enhanceCmd.Flags().String("preset", "", "style preset key (default: configured preset)")

	rootCmd.AddCommand(checkCmd, enhanceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	flags, err := guiFlags(cmd)
	if err != nil {
		return err
	}

	b, err := newBackend()
	if err != nil {
		return err
	}
	defer b.Close()

	src := llm.NewSource()
	chk := checker.New(checker.Deps{Prompts: b.prompts, Provider: src.Current, Cache: b.cache})
	enh := enhancer.New(enhancer.Deps{Prompts: b.prompts, Provider: src.Current, Cache: b.cache})

	clip := &runtimeClipboard{}
	ctrl := session.New(session.Deps{
		Settings:       b.settings,
		Presets:        b.presets,
		Clipboard:      clip,
		Checker:        chk,
		Enhancer:       enh,
		Generators:     src,
		BuildGenerator: func(key string) ports.Generator { return gemini.New(key) },
	})

	reportAPI := apiapp.NewReportAPI(ctrl, b.reports)
	app := NewApp(ctrl, clip, reportAPI, flags)

	width, height := 900, 700
	if flags.Popup {
		width, height = 500, 600
	}

	err = wails.Run(&options.App{
		Title:  "Redline",
		Width:  width,
		Height: height,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 27, G: 38, B: 54, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			apiapp.NewSessionAPI(ctrl),
			apiapp.NewSettingsAPI(ctrl, b.settings),
			apiapp.NewPresetsAPI(ctrl, b.presets),
			reportAPI,
		},
	})
	if err != nil {
		return fmt.Errorf("run app: %w", err)
	}
	return nil
}

// guiFlags maps the window-mode flags onto startup behavior. The three
// popup triggers are mutually exclusive; the first one set wins.
func guiFlags(cmd *cobra.Command) (session.StartupFlags, error) {
	flags := session.StartupFlags{APIKeyOverride: viper.GetString("api-key")}

	checkSelection, _ := cmd.Flags().GetBool("check-selection")
	checkText, _ := cmd.Flags().GetString("check")
	enhanceText, _ := cmd.Flags().GetString("enhance")

	switch {
	case checkSelection:
		text, ok := readPrimarySelection()
		if !ok {
			return flags, errors.New("no text selected. Select text before running with -s")
		}
		flags.InitialText, flags.AutoCheck, flags.Popup = text, true, true
	case checkText != "":
		flags.InitialText, flags.AutoCheck, flags.Popup = checkText, true, true
	case enhanceText != "":
		flags.InitialText, flags.AutoEnhance, flags.Popup = enhanceText, true, true
	}
	return flags, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	b, err := newBackend()
	if err != nil {
		return err
	}
	defer b.Close()

	ctx := cmd.Context()
	settings, err := b.settings.Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	lang := headlessLanguage(cmd, settings)
	s := lang.Strings()

	text, err := headlessText(cmd, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return errors.New(s.EnterTextCheck)
	}

	svc := checker.New(checker.Deps{
		Prompts:  b.prompts,
		Provider: headlessSource(settings).Current,
		Cache:    b.cache,
	})
	res, err := svc.Check(ctx, text, lang.DisplayName())
	if err != nil {
		if errors.Is(err, ports.ErrNotConfigured) {
			return errors.New(s.APINotConfigured)
		}
		return err
	}
	return emitReport(cmd, b.reports, lang, session.FormatCheckResult(s, res))
}

func runEnhance(cmd *cobra.Command, args []string) error {
	b, err := newBackend()
	if err != nil {
		return err
	}
	defer b.Close()

	ctx := cmd.Context()
	settings, err := b.settings.Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	lang := headlessLanguage(cmd, settings)
	s := lang.Strings()

	text, err := headlessText(cmd, args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return errors.New(s.EnterTextEnhance)
	}

	presetKey, _ := cmd.Flags().GetString("preset")
	if presetKey == "" {
		presetKey = settings.DefaultPreset
	}
	preset, ok := b.presets.Get(presetKey)
	if !ok {
		return fmt.Errorf("%s: %s", s.InvalidPreset, presetKey)
	}

	svc := enhancer.New(enhancer.Deps{
		Prompts:  b.prompts,
		Provider: headlessSource(settings).Current,
		Cache:    b.cache,
	})
	res, err := svc.Enhance(ctx, text, preset, lang.DisplayName())
	if err != nil {
		if errors.Is(err, ports.ErrNotConfigured) {
			return errors.New(s.APINotConfigured)
		}
		return err
	}
	return emitReport(cmd, b.reports, lang, session.FormatEnhanceResult(s, res))
}

// backend bundles the storage-side dependencies shared by the GUI and the
// headless commands.
type backend struct {
	db       *sql.DB
	settings *dbsqlite.SettingsRepo
	cache    *dbsqlite.CacheRepo
	presets  *presets.Registry
	prompts  *prompt.Builder
	reports  *report.Registry
}

func newBackend() (*backend, error) {
	dir := dataDir()
	db, err := dbsqlite.Init(filepath.Join(dir, "redline.db"))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	reg := presets.New()
	if err := reg.LoadFile(filepath.Join(dir, "presets.yaml")); err != nil {
		log.Warn().Err(err).Msg("load custom presets")
	}

	return &backend{
		db:       db,
		settings: dbsqlite.NewSettingsRepo(db),
		cache:    dbsqlite.NewCacheRepo(db),
		presets:  reg,
		prompts:  prompt.New(),
		reports:  report.Default(),
	}, nil
}

func (b *backend) Close() { _ = b.db.Close() }

// headlessSource builds a one-shot generator slot from the effective
// credential: the environment override wins over the stored key.
func headlessSource(settings domain.Settings) *llm.Source {
	key := viper.GetString("api-key")
	if key == "" {
		key = settings.APIKey
	}
	src := llm.NewSource()
	if key != "" {
		src.Set(gemini.New(key))
	}
	return src
}

func headlessText(cmd *cobra.Command, args []string) (string, error) {
	if useSelection, _ := cmd.Flags().GetBool("selection"); useSelection {
		text, ok := readPrimarySelection()
		if !ok {
			return "", errors.New("no text selected. Select text before running with -s")
		}
		return text, nil
	}
	if len(args) > 0 {
		return args[0], nil
	}
	return "", errors.New("provide TEXT as an argument or pass --selection")
}

func headlessLanguage(cmd *cobra.Command, s domain.Settings) i18n.Language {
	if key, _ := cmd.Flags().GetString("lang"); key != "" {
		return i18n.Parse(key)
	}
	return i18n.Parse(s.Language)
}

// emitReport prints the report to stdout, or renders it into the --out
// file with the format chosen by extension.
func emitReport(cmd *cobra.Command, reg *report.Registry, lang i18n.Language, reportText string) error {
	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		fmt.Println(reportText)
		return nil
	}

	format := strings.TrimPrefix(filepath.Ext(outPath), ".")
	rend, ok := reg.Get(format)
	if !ok {
		return fmt.Errorf("unsupported report format: %q", format)
	}
	title := strings.TrimSuffix(lang.Strings().Result, ":")
	data, err := rend.Render(title, reportText)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// readPrimarySelection returns the Wayland PRIMARY selection. Empty or
// whitespace-only selections count as no selection.
func readPrimarySelection() (string, bool) {
	out, err := exec.Command("wl-paste", "--primary", "--no-newline").Output()
	if err != nil {
		log.Debug().Err(err).Msg("wl-paste")
		return "", false
	}
	text := string(out)
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

func dataDir() string {
	if dir := viper.GetString("data"); dir != "" {
		return dir
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(base, "redline")
}

func initLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}
