// Package filter narrows an owner's song list for display. It is pure: the
// same inputs always produce the same filtered, sorted output and the input
// slice is never mutated. It applies no ownership logic; callers pass a
// list that is already scoped to one owner.
package filter

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"songbox/internal/domain"
)

// Range is an inclusive year range. WithFrom and WithTo keep the pair
// non-inverted when the two bounds are moved independently.
type Range struct {
	From int
	To   int
}

// DefaultRange spans MinYear through the current calendar year.
func DefaultRange() Range {
	return Range{From: domain.MinYear, To: time.Now().Year()}
}

// WithFrom moves the lower bound, raising To to match if From passes it.
func (r Range) WithFrom(from int) Range {
	r.From = from
	if r.To < from {
		r.To = from
	}
	return r
}

// WithTo moves the upper bound, lowering From to match if To passes it.
func (r Range) WithTo(to int) Range {
	r.To = to
	if r.From > to {
		r.From = to
	}
	return r
}

func (r Range) contains(year int) bool {
	return year >= r.From && year <= r.To
}

// Params holds the filter inputs. Zero values disable their stage: an empty
// Query, Singer or Letter skips that stage, and a Years range below MinYear
// skips the year stage.
type Params struct {
	// Query keeps songs whose title or singer contains it,
	// case-insensitively.
	Query string
	// Singer keeps songs whose singer matches exactly. Values come from the
	// existing collection (see Singers), so the match is case-sensitive.
	Singer string
	// Letter keeps songs whose title starts with it, compared uppercased.
	Letter string
	Years  Range
}

// Apply runs the stages in order (text search, exact singer, first letter,
// year range) and always finishes with a locale-aware ascending sort by
// title.
func Apply(songs []domain.Song, p Params) []domain.Song {
	out := make([]domain.Song, 0, len(songs))

	query := strings.ToLower(p.Query)
	letter := strings.ToUpper(p.Letter)
	years := p.Years
	if years.To < years.From {
		years.To = years.From
	}

	for _, song := range songs {
		if query != "" &&
			!strings.Contains(strings.ToLower(song.Title), query) &&
			!strings.Contains(strings.ToLower(song.Singer), query) {
			continue
		}
		if p.Singer != "" && song.Singer != p.Singer {
			continue
		}
		if letter != "" && firstLetter(song.Title) != letter {
			continue
		}
		if years.From >= domain.MinYear && !years.contains(song.Year) {
			continue
		}
		out = append(out, song)
	}

	c := collate.New(language.Und)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Title, out[j].Title) < 0
	})
	return out
}

// Singers derives the distinct non-empty singer values across the full
// collection, sorted, for populating the exact-singer filter.
func Singers(songs []domain.Song) []string {
	seen := make(map[string]struct{}, len(songs))
	singers := make([]string, 0, len(songs))
	for _, song := range songs {
		if song.Singer == "" {
			continue
		}
		if _, ok := seen[song.Singer]; ok {
			continue
		}
		seen[song.Singer] = struct{}{}
		singers = append(singers, song.Singer)
	}
	sort.Strings(singers)
	return singers
}

func firstLetter(title string) string {
	for _, r := range title {
		return strings.ToUpper(string(r))
	}
	return ""
}
