package countries

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/regform/pkg/async"
	"github.com/dmitrymomot/regform/pkg/logger"
)

const (
	outcomeSuccess   = "success"
	outcomeFailure   = "failure"
	outcomeDiscarded = "discarded"
)

// Catalog is the load-once container for the selectable countries of one
// form lifetime. It starts empty, is filled by a single background fetch,
// and is read-only afterwards.
type Catalog struct {
	source  Source
	log     *slog.Logger
	metrics *Metrics
	sortBy  *language.Tag
	now     func() time.Time

	startOnce sync.Once
	future    *async.Future[[]Entry]

	mu      sync.RWMutex
	entries []Entry
	index   map[string]struct{}
	loaded  bool
	closed  bool
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithLogger sets the diagnostic channel for fetch failures.
func WithLogger(l *slog.Logger) CatalogOption {
	return func(c *Catalog) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics records fetch outcomes on m.
func WithMetrics(m *Metrics) CatalogOption {
	return func(c *Catalog) { c.metrics = m }
}

// WithCollation sorts loaded entries by name using the rules of tag.
func WithCollation(tag language.Tag) CatalogOption {
	return func(c *Catalog) { c.sortBy = &tag }
}

// NewCatalog returns an empty catalog backed by source.
func NewCatalog(source Source, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		source: source,
		log:    logger.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewCatalogFromConfig builds a Client and a Catalog from cfg. Sorting uses
// cfg.SortLanguage and falls back to English for unparsable tags.
func NewCatalogFromConfig(cfg Config, clientOpts []ClientOption, opts ...CatalogOption) *Catalog {
	if cfg.Sort {
		tag, err := language.Parse(cfg.SortLanguage)
		if err != nil {
			tag = language.English
		}
		opts = append([]CatalogOption{WithCollation(tag)}, opts...)
	}
	return NewCatalog(NewClient(cfg, clientOpts...), opts...)
}

// Load starts the one and only fetch in the background and returns its
// Future. Later calls return the same Future without fetching again.
//
// On success the fetched entries replace the empty list. On failure one
// error record is logged and the list stays empty; there is no retry. A
// result that arrives after Close is dropped and the Future completes with
// ErrCatalogClosed.
func (c *Catalog) Load(ctx context.Context) *async.Future[[]Entry] {
	c.startOnce.Do(func() {
		c.future = async.Async(ctx, c.source, c.fetch)
	})
	return c.future
}

func (c *Catalog) fetch(ctx context.Context, src Source) ([]Entry, error) {
	started := c.now()
	entries, err := src.Fetch(ctx)
	elapsed := c.now().Sub(started)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.metrics.observeFetch(outcomeDiscarded, 0, elapsed)
		return nil, ErrCatalogClosed
	}

	if err != nil {
		c.metrics.observeFetch(outcomeFailure, 0, elapsed)
		c.log.ErrorContext(ctx, "country catalog fetch failed",
			logger.Component("countries"),
			logger.Event("catalog_fetch_failed"),
			logger.Duration(elapsed),
			logger.Error(err),
		)
		return nil, err
	}

	if c.sortBy != nil {
		col := collate.New(*c.sortBy)
		slices.SortStableFunc(entries, func(a, b Entry) int {
			return col.CompareString(a.Name, b.Name)
		})
	}

	index := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		index[e.Name] = struct{}{}
	}
	c.entries = entries
	c.index = index
	c.loaded = true

	c.metrics.observeFetch(outcomeSuccess, len(entries), elapsed)
	c.log.DebugContext(ctx, "country catalog loaded",
		logger.Component("countries"),
		logger.Count(len(entries)),
		logger.Duration(elapsed),
	)
	return slices.Clone(entries), nil
}

// Close ends the catalog's lifetime. An in-flight fetch is not canceled, but
// its result will not be applied.
func (c *Catalog) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

// Entries returns a copy of the selectable countries, empty until loaded.
func (c *Catalog) Entries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.entries)
}

// Contains reports whether name is a loaded country. Empty names never match.
func (c *Catalog) Contains(name string) bool {
	if name == "" {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.index[name]
	return ok
}

// Loaded reports whether a fetch has been applied.
func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Reconcile keeps a previously selected country only while it is still
// present by name; otherwise the selection is cleared.
func (c *Catalog) Reconcile(selected string) string {
	if c.Contains(selected) {
		return selected
	}
	return ""
}

// Ready returns ErrNotLoaded until the catalog holds fetched entries.
// Its signature matches httpserver.Check.
func (c *Catalog) Ready(context.Context) error {
	if !c.Loaded() {
		return ErrNotLoaded
	}
	return nil
}
