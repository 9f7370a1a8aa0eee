package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"moodrec/internal/config"
	"moodrec/internal/corpus"
	"moodrec/internal/domain"
	"moodrec/internal/logging"
	"moodrec/internal/sentiment"
	"moodrec/internal/service"
	"moodrec/internal/styles"
	"moodrec/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath   string
		dataPath  string
		name      string
		genre     string
		mood      string
		minRating string
		topN      int
		like      string
	)
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ./moodrec.yaml or ~/.config/moodrec/config.yaml)")
	flag.StringVar(&dataPath, "data", "", "Movie CSV file (overrides corpus.path)")
	flag.StringVar(&name, "name", "", "Your name, shown in the results header")
	flag.StringVar(&genre, "genre", "", "Genre number or name; runs one query and exits")
	flag.StringVar(&mood, "mood", "", "Your mood in free text; runs one query and exits")
	flag.StringVar(&minRating, "min-rating", "", "Minimum rating; runs one query and exits")
	flag.IntVar(&topN, "n", 0, "Number of recommendations (default from config)")
	flag.StringVar(&like, "like", "", "Print movies similar to this title and exit")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("failed to load config: "+err.Error()))
		os.Exit(1)
	}
	if dataPath != "" {
		cfg.Corpus.Path = dataPath
	}
	if topN <= 0 {
		topN = cfg.Recommend.TopN
	}

	oneShot := genre != "" || mood != "" || minRating != "" || like != ""
	logOut, closeLog := logOutput(cfg, oneShot)
	defer closeLog()
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: logOut})

	movies, err := corpus.Load(cfg.Corpus.Path, cfg.Corpus.Columns)
	if err != nil {
		var loadErr *domain.CorpusLoadError
		if errors.As(err, &loadErr) {
			fail(err, fmt.Sprintf("Error: the file '%s' could not be loaded", loadErr.Path))
		}
		fail(err, "corpus load failed")
	}
	logging.Info().Str("path", cfg.Corpus.Path).Int("movies", len(movies)).Msg("corpus loaded")

	var scorer domain.Scorer
	switch cfg.Sentiment.Scorer {
	case "vader", "":
		scorer = sentiment.NewVader()
	case "lexicon":
		lexicon := sentiment.DefaultLexicon()
		if cfg.Sentiment.LexiconPath != "" {
			if lexicon, err = sentiment.LoadLexicon(cfg.Sentiment.LexiconPath); err != nil {
				fail(err, "lexicon load failed")
			}
		}
		scorer = sentiment.NewAnalyzer(lexicon, sentiment.Config{NegationWindow: cfg.Sentiment.NegationWindow})
	default:
		fail(fmt.Errorf("unknown scorer %q", cfg.Sentiment.Scorer), "sentiment setup failed")
	}

	opts := []service.Option{service.WithDefaultTopN(cfg.Recommend.TopN)}
	if cfg.Recommend.Seed != 0 {
		opts = append(opts, service.WithShuffler(rand.New(rand.NewPCG(cfg.Recommend.Seed, cfg.Recommend.Seed))))
	}
	engine, err := service.NewEngine(movies, scorer, opts...)
	if err != nil {
		fail(err, "index build failed")
	}

	if like != "" {
		title, ns, err := engine.Similar(like, topN)
		if err != nil {
			fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render(err.Error()))
			os.Exit(1)
		}
		fmt.Println(styles.Neighbors(title, ns))
		return
	}

	if oneShot {
		q := domain.Query{Mood: mood, TopN: topN}
		if genre != "" {
			if q.Genre, err = engine.ResolveGenre(genre); err != nil {
				fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("Invalid genre. Available genres:"))
				fmt.Fprintln(os.Stderr, styles.Genres(engine.Genres()))
				os.Exit(2)
			}
		}
		if minRating != "" {
			r, err := strconv.ParseFloat(minRating, 64)
			if err != nil {
				fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("invalid -min-rating: "+minRating))
				os.Exit(2)
			}
			q.MinRating = &r
		}
		res, err := engine.Recommend(context.Background(), q)
		if err != nil {
			fail(err, "recommend failed")
		}
		fmt.Println(styles.Recommendations(name, res))
		return
	}

	m := tui.New(engine, name, topN)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fail(err, "tui failed")
	}
}

// logOutput keeps log lines off the terminal while the TUI owns it.
func logOutput(cfg *config.AppConfig, oneShot bool) (io.Writer, func()) {
	if oneShot {
		return os.Stderr, func() {}
	}
	if cfg.Log.File == "" {
		return io.Discard, func() {}
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("cannot open log file: "+err.Error()))
		return io.Discard, func() {}
	}
	return f, func() { _ = f.Close() }
}

// fail reports err on the terminal and through the logger, then exits.
func fail(err error, msg string) {
	fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render(msg+": "+err.Error()))
	logging.Fatal().Err(err).Msg(msg)
	// Fatal does not exit when the level is disabled.
	os.Exit(1)
}
