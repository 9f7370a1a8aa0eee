package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"moodrec/internal/corpus"
	"moodrec/internal/domain"
	"moodrec/internal/embedding/tfidf"
	"moodrec/internal/logging"
	"moodrec/internal/vectorstore"
	"moodrec/internal/vectorstore/memory"
)

// Engine answers recommendation queries over an immutable corpus.
// Everything it holds is built once by NewEngine and only read afterwards.
type Engine struct {
	movies   []domain.MovieRecord
	features []string
	store    vectorstore.Storage
	catalog  *corpus.Catalog
	titles   map[string]int
	// titleWords holds the distinct title words of each movie, for fuzzy lookup.
	titleWords []map[string]struct{}

	scorer domain.Scorer
	// shuffleMu serialises calls into shuffler; seeded *rand.Rand sources are not goroutine-safe.
	shuffleMu sync.Mutex
	shuffler  domain.Shuffler
	embedder domain.Embedder
	topN     int
	log      zerolog.Logger
}

// Option customises an Engine.
type Option func(*Engine)

// WithShuffler replaces the source of candidate order.
func WithShuffler(s domain.Shuffler) Option {
	return func(e *Engine) { e.shuffler = s }
}

// WithEmbedder replaces the TF-IDF embedder used for the similarity index.
func WithEmbedder(emb domain.Embedder) Option {
	return func(e *Engine) { e.embedder = emb }
}

// WithStorage replaces the in-memory similarity store.
func WithStorage(st vectorstore.Storage) Option {
	return func(e *Engine) { e.store = st }
}

// WithDefaultTopN sets the result count used when a query leaves TopN unset.
func WithDefaultTopN(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.topN = n
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine builds feature blobs, the similarity index and the genre catalog.
// It fails with domain.ErrEmptyCorpus when movies is empty.
func NewEngine(movies []domain.MovieRecord, scorer domain.Scorer, opts ...Option) (*Engine, error) {
	if scorer == nil {
		return nil, fmt.Errorf("nil scorer")
	}
	e := &Engine{
		movies:   movies,
		scorer:   scorer,
		shuffler: globalShuffler{},
		embedder: tfidf.NewEmbedder(),
		store:    memory.NewStorage(),
		topN:     domain.DefaultTopN,
		log:      logging.With().Str("component", "engine").Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}

	start := time.Now()
	e.features = corpus.BuildFeatures(movies)
	if err := BuildIndex(e.embedder, e.store, e.features); err != nil {
		return nil, err
	}
	e.catalog = corpus.NewCatalog(movies)
	e.titles = make(map[string]int, len(movies))
	e.titleWords = make([]map[string]struct{}, len(movies))
	for i, m := range movies {
		e.titleWords[i] = titleTerms(m.Title)
		key := strings.ToLower(m.Title)
		if _, dup := e.titles[key]; !dup {
			e.titles[key] = i
		}
	}
	e.log.Info().
		Int("movies", len(movies)).
		Int("vocabulary", e.embedder.Dimension()).
		Int("genres", e.catalog.Len()).
		Dur("took", time.Since(start)).
		Msg("index built")
	return e, nil
}

// BuildIndex prepares emb over features and stores one vector per feature in st.
// No partial index is left behind on failure of the embedder.
func BuildIndex(emb domain.Embedder, st vectorstore.Storage, features []string) error {
	if len(features) == 0 {
		return domain.ErrEmptyCorpus
	}
	if err := emb.Prepare(features); err != nil {
		return fmt.Errorf("prepare %s embedder: %w", emb.Name(), err)
	}
	vectors := make([]domain.Vector, len(features))
	for i, f := range features {
		v, err := emb.Embed(f)
		if err != nil {
			return fmt.Errorf("embed feature %d: %w", i, err)
		}
		vectors[i] = v
	}
	return st.Build(vectors)
}

// Genres returns the sorted genre catalog.
func (e *Engine) Genres() []string { return e.catalog.Genres() }

// ResolveGenre maps a 1-based catalog position or an exact genre label to the label.
// Unknown input yields *domain.InvalidGenreError.
func (e *Engine) ResolveGenre(input string) (string, error) { return e.catalog.Resolve(input) }

// Movies returns the number of movies in the corpus.
func (e *Engine) Movies() int { return len(e.movies) }

// Recommend filters the corpus by genre and minimum rating, visits the survivors in
// shuffled order and keeps those whose synopsis polarity fits the mood, up to q.TopN.
// An empty result means nothing qualified; it is not an error.
func (e *Engine) Recommend(ctx context.Context, q domain.Query) (domain.Result, error) {
	reqLog := e.log.With().Str("request_id", uuid.NewString()).Logger()
	limit := q.TopN
	if limit <= 0 {
		limit = e.topN
	}

	candidates := e.filter(q)
	e.shuffle(candidates)

	mood := strings.TrimSpace(q.Mood)
	hasMood := mood != ""
	moodPolarity := 0.0
	if hasMood {
		moodPolarity = e.scorer.Polarity(mood)
	}

	recs := make([]domain.Recommendation, 0, limit)
	scored := 0
	for _, idx := range candidates {
		if err := ctx.Err(); err != nil {
			return domain.Result{}, err
		}
		m := e.movies[idx]
		if m.Synopsis == nil {
			continue
		}
		polarity := e.scorer.Polarity(*m.Synopsis)
		scored++
		if !domain.MoodAccepts(hasMood, moodPolarity, polarity) {
			continue
		}
		recs = append(recs, domain.Recommendation{Title: m.Title, Polarity: polarity})
		if len(recs) == limit {
			break
		}
	}

	reqLog.Debug().
		Str("genre", q.Genre).
		Bool("mood", hasMood).
		Float64("mood_polarity", moodPolarity).
		Int("candidates", len(candidates)).
		Int("scored", scored).
		Int("accepted", len(recs)).
		Msg("recommend")
	return domain.Result{Recommendations: recs}, nil
}

func (e *Engine) shuffle(candidates []int) {
	e.shuffleMu.Lock()
	defer e.shuffleMu.Unlock()
	e.shuffler.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
}

// globalShuffler uses the goroutine-safe top-level math/rand/v2 source.
type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// filter returns positions of movies passing the genre and rating constraints, in corpus order.
func (e *Engine) filter(q domain.Query) []int {
	genre := strings.TrimSpace(q.Genre)
	out := make([]int, 0, len(e.movies))
	for i, m := range e.movies {
		if genre != "" && !m.HasGenre(genre) {
			continue
		}
		if q.MinRating != nil && (m.Rating == nil || *m.Rating < *q.MinRating) {
			continue
		}
		out = append(out, i)
	}
	return out
}

// Similar returns the resolved title and up to k movies ordered by decreasing cosine
// similarity of their feature blobs. The title is matched case-insensitively, falling
// back to the title sharing the most words with it.
func (e *Engine) Similar(title string, k int) (string, []domain.Neighbor, error) {
	idx, ok := e.lookupTitle(title)
	if !ok {
		return "", nil, fmt.Errorf("unknown title %q", title)
	}
	matches, err := e.store.Nearest(idx, k)
	if err != nil {
		return "", nil, err
	}
	out := make([]domain.Neighbor, len(matches))
	for i, m := range matches {
		out[i] = domain.Neighbor{Title: e.movies[m.Index].Title, Score: m.Score}
	}
	return e.movies[idx].Title, out, nil
}
