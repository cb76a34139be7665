package runner

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	"golang.org/x/sync/errgroup"

	"github.com/nordpick/nordpick/pkg/api"
	"github.com/nordpick/nordpick/pkg/cache"
	"github.com/nordpick/nordpick/pkg/filters"
	"github.com/nordpick/nordpick/pkg/selection"
	"github.com/nordpick/nordpick/pkg/types"
)

// Runner contains the internal logic of the program
type Runner struct {
	options  *Options
	client   *api.Client
	cacheDir string
}

// NewRunner instance
func NewRunner(options *Options) (*Runner, error) {
	return &Runner{
		options:  options,
		client:   api.NewClient(api.APIServer),
		cacheDir: cache.DefaultDir,
	}, nil
}

// Run the instance
func (r *Runner) Run(ctx context.Context) error {
	if r.options.ClearCache {
		if err := cache.Clear(r.cacheDir); err != nil {
			return errorutil.NewWithErr(err).Msgf("failed to clear reference data cache at %s", r.cacheDir)
		}
		gologger.Info().Msgf("cleared reference data cache at %s\n", r.cacheDir)
		return nil
	}

	countries, technologies, groups, err := r.loadReferenceData(ctx)
	if err != nil {
		return err
	}

	switch {
	case r.options.ListCountries:
		return r.listCountries(countries)
	case r.options.ListTechnologies:
		return r.listTechnologies(technologies)
	case r.options.ListGroups:
		return r.listGroups(groups)
	}

	tables := filters.NewTables(countries, technologies, groups)

	var filterSet filters.FilterSet
	for _, token := range r.options.Filters {
		if err := filterSet.Classify(tables, token); err != nil {
			return err
		}
	}
	gologger.Verbose().Msgf("classified filters: country=%q technologies=%v groups=%v",
		filterSet.Country, filterSet.Technologies, filterSet.Groups)

	// the API takes a single technology and a single group hint per
	// request; push the first of each and enforce the rest client-side
	query := api.Query{CountryID: filterSet.Country}
	if len(filterSet.Technologies) > 0 {
		query.TechnologyHint = filterSet.Technologies[0]
	}
	if len(filterSet.Groups) > 0 {
		query.GroupHint = filterSet.Groups[0]
	}

	servers, err := r.client.Servers(ctx, query)
	if err != nil {
		return errorutil.NewWithErr(err).Msgf("failed to fetch candidate servers")
	}
	gologger.Verbose().Msgf("fetched %d candidate servers", len(servers))

	selected, err := selection.Select(servers, selection.MatchAll(filterSet.Technologies, filterSet.Groups), r.options.Count)
	if err != nil {
		return err
	}

	for _, server := range selected {
		fmt.Println(selection.Display(server, r.options.UseAddress))
	}
	return nil
}

// loadReferenceData loads the three reference collections, fetching them in
// parallel and failing fast on the first error. Classification needs all
// three tables, so the caller only proceeds once every fetch has joined.
func (r *Runner) loadReferenceData(ctx context.Context) ([]types.Country, []types.Technology, []types.Group, error) {
	var (
		countries    []types.Country
		technologies []types.Technology
		groups       []types.Group
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		countries, err = loadCollection(ctx, filepath.Join(r.cacheDir, cache.CountriesFile), r.client.Countries)
		return err
	})
	g.Go(func() error {
		var err error
		technologies, err = loadCollection(ctx, filepath.Join(r.cacheDir, cache.TechnologiesFile), r.client.Technologies)
		return err
	})
	g.Go(func() error {
		var err error
		groups, err = loadCollection(ctx, filepath.Join(r.cacheDir, cache.GroupsFile), r.client.Groups)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, errorutil.NewWithErr(err).Msgf("failed to load reference data")
	}
	return countries, technologies, groups, nil
}

// loadCollection consults the on-disk cache first and falls back to the
// network on any read failure. Fresh fetches are written back for the next
// run; a failed cache write only costs that run a fetch.
func loadCollection[T any](ctx context.Context, path string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	if records, err := cache.Load[T](path); err == nil && len(records) > 0 {
		gologger.Verbose().Msgf("using cached %s", filepath.Base(path))
		return records, nil
	}
	records, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if err := cache.Store(path, records); err != nil {
		gologger.Warning().Msgf("failed to cache %s: %s\n", filepath.Base(path), err)
	}
	return records, nil
}

// listCountries prints the countries reference collection
func (r *Runner) listCountries(countries []types.Country) error {
	sort.Slice(countries, func(i, j int) bool { return countries[i].Name < countries[j].Name })
	for _, country := range countries {
		fmt.Printf("%s %s\n", au.Cyan(country.Code), country.Name)
	}
	return nil
}

// listTechnologies prints the technologies reference collection
func (r *Runner) listTechnologies(technologies []types.Technology) error {
	for _, technology := range technologies {
		fmt.Printf("%s %s\n", au.Cyan(technology.Identifier), technology.Name)
	}
	return nil
}

// listGroups prints the server groups reference collection
func (r *Runner) listGroups(groups []types.Group) error {
	for _, group := range groups {
		fmt.Printf("%s %s\n", au.Cyan(group.Identifier), group.Title)
	}
	return nil
}

// Close the runner instance
func (r *Runner) Close() {}
