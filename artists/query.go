package artists

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"stagelink/models"
)

// QueryOptions is the recognized filter/sort/paginate configuration for the
// artist listing.
type QueryOptions struct {
	Search       string
	Category     string
	Location     string
	Availability string
	MinPrice     *float64
	MaxPrice     *float64
	Featured     bool
	SortBy       string
	SortOrder    string
	Page         int
	Limit        int
}

// ParseQueryOptions reads the listing parameters. Malformed numeric values
// are an error here rather than silently filtering everything out.
func ParseQueryOptions(r *http.Request) (QueryOptions, error) {
	q := r.URL.Query()

	opts := QueryOptions{
		Search:       q.Get("search"),
		Category:     q.Get("category"),
		Location:     q.Get("location"),
		Availability: q.Get("availability"),
		Featured:     q.Get("featured") == "true",
		SortBy:       "name",
		SortOrder:    "asc",
		Page:         1,
		Limit:        10,
	}

	if v := q.Get("minPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, fmt.Errorf("invalid minPrice %q", v)
		}
		opts.MinPrice = &f
	}
	if v := q.Get("maxPrice"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, fmt.Errorf("invalid maxPrice %q", v)
		}
		opts.MaxPrice = &f
	}
	if v := q.Get("sortBy"); v != "" {
		opts.SortBy = v
	}
	if v := q.Get("sortOrder"); v != "" {
		opts.SortOrder = v
	}
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return opts, fmt.Errorf("invalid page %q", v)
		}
		opts.Page = n
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return opts, fmt.Errorf("invalid limit %q", v)
		}
		opts.Limit = n
	}

	return opts, nil
}

type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

type QueryResult struct {
	Artists    []models.Artist `json:"artists"`
	Pagination Pagination      `json:"pagination"`
}

// RunQuery filters, sorts and paginates a snapshot of the artist collection.
// Pure function: the input slice is reordered but its elements are never
// mutated, and no store state is touched.
func RunQuery(src []models.Artist, opts QueryOptions) QueryResult {
	filtered := applyFilters(src, opts)
	sortArtists(filtered, opts.SortBy, opts.SortOrder)

	total := len(filtered)
	totalPages := 0
	if total > 0 {
		totalPages = (total + opts.Limit - 1) / opts.Limit
	}

	page := []models.Artist{}
	start := (opts.Page - 1) * opts.Limit
	if start < total {
		end := start + opts.Limit
		if end > total {
			end = total
		}
		page = filtered[start:end]
	}

	return QueryResult{
		Artists: page,
		Pagination: Pagination{
			Total:      total,
			Page:       opts.Page,
			Limit:      opts.Limit,
			TotalPages: totalPages,
		},
	}
}

// applyFilters keeps the artists matching every active filter (AND
// semantics). Filters run before sorting.
func applyFilters(src []models.Artist, opts QueryOptions) []models.Artist {
	out := make([]models.Artist, 0, len(src))
	for _, a := range src {
		if opts.Search != "" && !matchesSearch(a, opts.Search) {
			continue
		}
		if opts.Category != "" && opts.Category != "all" && !strings.EqualFold(a.Category, opts.Category) {
			continue
		}
		if opts.Location != "" && !containsFold(a.Location, opts.Location) {
			continue
		}
		if opts.Availability != "" && string(a.Availability) != opts.Availability {
			continue
		}
		if opts.MinPrice != nil && a.Price < *opts.MinPrice {
			continue
		}
		if opts.MaxPrice != nil && a.Price > *opts.MaxPrice {
			continue
		}
		if opts.Featured && !a.Featured {
			continue
		}
		out = append(out, a)
	}
	return out
}

// matchesSearch is a case-insensitive substring match against name, specialty
// or any tag.
func matchesSearch(a models.Artist, term string) bool {
	if containsFold(a.Name, term) || containsFold(a.Specialty, term) {
		return true
	}
	for _, tag := range a.Tags {
		if containsFold(tag, term) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// sortArtists orders the slice by the chosen key. The sort is stable in both
// directions: equal-key artists keep their original relative order.
func sortArtists(list []models.Artist, sortBy, sortOrder string) {
	var less func(i, j int) bool
	switch sortBy {
	case "price":
		less = func(i, j int) bool { return list[i].Price < list[j].Price }
	case "rating":
		less = func(i, j int) bool { return list[i].Rating < list[j].Rating }
	case "reviews":
		less = func(i, j int) bool { return list[i].Reviews < list[j].Reviews }
	default: // name
		less = func(i, j int) bool {
			return strings.ToLower(list[i].Name) < strings.ToLower(list[j].Name)
		}
	}

	if sortOrder == "desc" {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}
	sort.SliceStable(list, less)
}
