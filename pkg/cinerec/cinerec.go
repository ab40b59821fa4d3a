package cinerec

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cognicore/cinerec/pkg/cinerec/cards"
	"github.com/cognicore/cinerec/pkg/cinerec/catalog"
	"github.com/cognicore/cinerec/pkg/cinerec/filter"
	"github.com/cognicore/cinerec/pkg/cinerec/inference"
	"github.com/cognicore/cinerec/pkg/cinerec/inference/prolog"
	"github.com/cognicore/cinerec/pkg/cinerec/internalerr"
)

// Cinerec binds the catalog and the rule engine for the presentation layer.
// The catalog and rules never change after New, but the card builder advances
// its ULID entropy on every call, so a Cinerec must be used from one goroutine.
type Cinerec struct {
	catalog  *catalog.Catalog
	rules    inference.Engine
	rulesErr error
	cards    *cards.Builder
	log      *zap.Logger
}

// Options configures a Cinerec instance
type Options struct {
	Catalog *catalog.Catalog

	// Rules answers Recommend. When nil, every Recommend call fails with
	// an *internalerr.UnavailableError wrapping RulesErr.
	Rules    inference.Engine
	RulesErr error

	Logger *zap.Logger
}

// New creates a Cinerec instance with the given dependencies
func New(opts Options) *Cinerec {
	c := &Cinerec{
		catalog:  opts.Catalog,
		rules:    opts.Rules,
		rulesErr: opts.RulesErr,
		cards:    cards.New(),
		log:      opts.Logger,
	}
	if c.catalog == nil {
		c.catalog = catalog.Default()
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	return c
}

// Close releases the rule engine and its fact store
func (c *Cinerec) Close() error {
	if c.rules == nil {
		return nil
	}
	return c.rules.Close()
}

// FilterRequest carries the raw text of a filter form.
type FilterRequest struct {
	Genre     string
	MinYear   string
	MinRating string
}

// Filter parses the request and returns the matching movies as a card. A
// malformed field yields an *internalerr.ParseError.
func (c *Cinerec) Filter(req FilterRequest) (cards.Card, error) {
	criteria, err := filter.ParseCriteria(req.Genre, req.MinYear, req.MinRating)
	if err != nil {
		c.log.Warn("filter rejected", zap.String("genre", req.Genre),
			zap.String("min_year", req.MinYear), zap.String("min_rating", req.MinRating), zap.Error(err))
		return cards.Card{}, err
	}

	movies := c.FilterMovies(criteria)
	items := make([]string, len(movies))
	for i, m := range movies {
		items[i] = m.Describe()
	}

	c.log.Debug("filter", zap.String("genre", criteria.Genre.String()), zap.Int("min_year", criteria.MinYear),
		zap.Float64("min_rating", criteria.MinRating), zap.Int("matches", len(items)))

	return c.cards.Build(cards.KindFilter, "Movies filtered by:", []cards.Criterion{
		{Label: "Genre", Value: criteria.Genre.String()},
		{Label: "Minimum year", Value: strconv.Itoa(criteria.MinYear)},
		{Label: "Minimum rating", Value: catalog.FormatRating(criteria.MinRating)},
	}, items), nil
}

// FilterMovies applies typed criteria to the catalog.
func (c *Cinerec) FilterMovies(criteria filter.Criteria) []catalog.Movie {
	return filter.Apply(c.catalog, criteria)
}

// RecommendRequest carries the raw text of a recommendation form. Params
// the rule does not take are ignored.
type RecommendRequest struct {
	Rule      string
	Genre     string
	MinYear   string
	MinRating string
}

// Recommend runs a rule query and returns the matching movie identifiers as a
// card. It fails with *internalerr.UnavailableError when the rule engine did
// not start, and with *internalerr.QueryError for an unknown rule or bad
// params.
func (c *Cinerec) Recommend(ctx context.Context, req RecommendRequest) (cards.Card, error) {
	if c.rules == nil {
		err := &internalerr.UnavailableError{Component: "rule engine", Err: c.rulesErr}
		c.log.Warn("recommend rejected", zap.String("rule", req.Rule), zap.Error(err))
		return cards.Card{}, err
	}

	q, err := inference.ParseQuery(req.Rule, req.Genre, req.MinYear, req.MinRating)
	if err != nil {
		c.log.Warn("recommend rejected", zap.String("rule", req.Rule), zap.Error(err))
		return cards.Card{}, err
	}

	ids, err := c.RecommendIDs(ctx, q)
	if err != nil {
		return cards.Card{}, err
	}

	r, _ := inference.Lookup(string(q.Rule))
	var criteria []cards.Criterion
	if r.Takes(inference.ParamGenre) {
		criteria = append(criteria, cards.Criterion{Label: "Genre", Value: q.Genre.String()})
	}
	if r.Takes(inference.ParamMinYear) {
		criteria = append(criteria, cards.Criterion{Label: "Minimum year", Value: strconv.Itoa(q.MinYear)})
	}
	if r.Takes(inference.ParamMinRating) {
		criteria = append(criteria, cards.Criterion{Label: "Minimum rating", Value: catalog.FormatRating(q.MinRating)})
	}

	return c.cards.Build(cards.KindRecommendation, fmt.Sprintf("Recommendations using: %s", q.Rule), criteria, ids), nil
}

// RecommendIDs runs a typed query against the rule engine.
func (c *Cinerec) RecommendIDs(ctx context.Context, q inference.Query) ([]string, error) {
	if c.rules == nil {
		return nil, &internalerr.UnavailableError{Component: "rule engine", Err: c.rulesErr}
	}

	ids, err := c.rules.Query(ctx, q)
	if err != nil {
		c.log.Warn("rule query failed", zap.String("rule", string(q.Rule)), zap.Error(err))
		return nil, err
	}

	c.log.Debug("recommend", zap.String("goal", q.Goal()), zap.Int("matches", len(ids)))
	return ids, nil
}

// Catalog lists every movie as "Title, genre, year, rating".
func (c *Cinerec) Catalog() cards.Card {
	movies := c.catalog.Movies()
	items := make([]string, len(movies))
	for i, m := range movies {
		items[i] = fmt.Sprintf("%s, %s, %d, %s", m.Title, m.Genre, m.Year, catalog.FormatRating(m.Rating))
	}
	return c.cards.Build(cards.KindCatalog, "MOVIES IN THE DATABASE:", []cards.Criterion{
		{Label: "Format", Value: "Title, Genre, Year, Rating"},
	}, items)
}

// Rules returns the recommendation rules the engine answers.
func (c *Cinerec) Rules() []inference.Rule {
	return inference.Rules()
}

// RuleList lists the rules as "name (alias): condition [params]".
func (c *Cinerec) RuleList() cards.Card {
	rules := c.Rules()
	items := make([]string, len(rules))
	for i, r := range rules {
		params := make([]string, len(r.Params))
		for j, p := range r.Params {
			params[j] = string(p)
		}
		items[i] = fmt.Sprintf("%s (%s): %s [%s]", r.Name, r.Alias, r.Description, strings.Join(params, ", "))
	}
	return c.cards.Build(cards.KindCatalog, "RECOMMENDATION RULES:", []cards.Criterion{
		{Label: "Format", Value: "Name (alias): condition [params]"},
	}, items)
}

// Program returns the catalog facts and rule clauses as Prolog source.
func (c *Cinerec) Program() string {
	return prolog.Program(c.catalog.Facts())
}

// Available reports whether Recommend can be served, and why not.
func (c *Cinerec) Available() (bool, error) {
	return c.rules != nil, c.rulesErr
}
