package search

import (
	"reflect"
	"testing"

	"github.com/arlox/showdeck/internal/domain"
)

func sampleShows() []domain.Show {
	return []domain.Show{
		{ID: 1, Name: "Breaking Ground", Summary: "<p>A construction crew drama.</p>", Genres: []string{"Drama"}},
		{ID: 2, Name: "Night Watch", Summary: "<p>Detectives on the graveyard shift.</p>", Genres: []string{"Crime", "Thriller"}},
		{ID: 3, Name: "Orbit", Summary: "<p>Life aboard a space station.</p>", Genres: []string{"Science-Fiction"}},
		{ID: 4, Name: "The Long Road", Summary: "", Genres: nil},
	}
}

func showNames(shows []domain.Show) []string {
	names := make([]string, len(shows))
	for i, s := range shows {
		names[i] = s.Name
	}
	return names
}

func TestFilterShows(t *testing.T) {
	shows := sampleShows()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"match on name", "night", []string{"Night Watch"}},
		{"case-insensitive", "NIGHT", []string{"Night Watch"}},
		{"match on summary", "space station", []string{"Orbit"}},
		{"match on genre", "thriller", []string{"Night Watch"}},
		{"no hits", "zebra", []string{}},
		{"multiple hits keep order", "the", []string{"Night Watch", "The Long Road"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := showNames(FilterShows(shows, tt.query))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterShows(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestFilterShowsEmptyQueryReturnsInput(t *testing.T) {
	shows := sampleShows()

	for _, query := range []string{"", "   ", "\t"} {
		got := FilterShows(shows, query)
		if len(got) != len(shows) {
			t.Errorf("FilterShows(%q) dropped records: got %d, want %d", query, len(got), len(shows))
		}
	}
}

func TestFilterShowsIdempotent(t *testing.T) {
	shows := sampleShows()

	for _, query := range []string{"the", "night", "drama", "zebra", ""} {
		once := FilterShows(shows, query)
		twice := FilterShows(once, query)
		if !reflect.DeepEqual(showNames(twice), showNames(once)) {
			t.Errorf("FilterShows(%q) not idempotent: %v then %v",
				query, showNames(once), showNames(twice))
		}
	}
}

func TestFilterMonotonic(t *testing.T) {
	shows := sampleShows()
	episodes := []domain.Episode{
		{ID: 1, Name: "Pilot", Summary: "<p>Where it begins.</p>"},
		{ID: 2, Name: "Fallout"},
	}

	queries := []string{"", " ", "a", "night watch", "ZEBRA", "<p>", "!@#$", "   drama   "}
	for _, query := range queries {
		if got := FilterShows(shows, query); len(got) > len(shows) {
			t.Errorf("FilterShows(%q) grew the list: %d > %d", query, len(got), len(shows))
		}
		if got := FilterEpisodes(episodes, query); len(got) > len(episodes) {
			t.Errorf("FilterEpisodes(%q) grew the list: %d > %d", query, len(got), len(episodes))
		}
	}
}

func TestFilterShowsDoesNotMutateSource(t *testing.T) {
	shows := sampleShows()
	before := showNames(shows)

	FilterShows(shows, "night")
	FilterShows(shows, "zebra")

	if !reflect.DeepEqual(showNames(shows), before) {
		t.Error("FilterShows reordered or mutated the source list")
	}
}

func TestFilterShowsIgnoresHTMLTags(t *testing.T) {
	shows := []domain.Show{
		{ID: 1, Name: "Alpha", Summary: "<p class=\"lead\">plain text</p>"},
	}

	// Tag and attribute text must not produce hits
	for _, query := range []string{"p class", "lead", "<p>"} {
		if got := FilterShows(shows, query); len(got) != 0 {
			t.Errorf("FilterShows(%q) matched markup, got %d hits", query, len(got))
		}
	}

	if got := FilterShows(shows, "plain text"); len(got) != 1 {
		t.Errorf("FilterShows on stripped text = %d hits, want 1", len(got))
	}
}

func TestFilterEpisodes(t *testing.T) {
	episodes := []domain.Episode{
		{ID: 1, Name: "Pilot", Summary: "<p>Where it begins.</p>", Season: 1, Number: 1},
		{ID: 2, Name: "Fallout", Summary: "<p>The aftermath.</p>", Season: 1, Number: 2},
		{ID: 3, Name: "Homecoming", Summary: "", Special: true},
	}

	got := FilterEpisodes(episodes, "aftermath")
	if len(got) != 1 || got[0].Name != "Fallout" {
		t.Errorf("FilterEpisodes(aftermath) = %v, want [Fallout]", got)
	}

	if got := FilterEpisodes(episodes, ""); len(got) != 3 {
		t.Errorf("empty query returned %d episodes, want 3", len(got))
	}

	if got := FilterEpisodes(episodes, "nothing here"); len(got) != 0 {
		t.Errorf("FilterEpisodes(no hits) = %d, want 0", len(got))
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "no markup here", "no markup here"},
		{"simple paragraph", "<p>hello</p>", "hello"},
		{"nested tags", "<p>a <b>bold</b> claim</p>", "a bold claim"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.in); got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSuggestShows(t *testing.T) {
	shows := sampleShows()

	suggestions := SuggestShows(shows, "nigt wach", 3)
	if len(suggestions) == 0 {
		t.Fatal("no suggestions for a near-miss query")
	}
	if suggestions[0] != "Night Watch" {
		t.Errorf("top suggestion = %q, want %q", suggestions[0], "Night Watch")
	}

	if got := SuggestShows(shows, "", 3); got != nil {
		t.Errorf("SuggestShows with empty query = %v, want nil", got)
	}
	if got := SuggestShows(nil, "query", 3); got != nil {
		t.Errorf("SuggestShows with no shows = %v, want nil", got)
	}

	many := SuggestShows(shows, "o", 2)
	if len(many) > 2 {
		t.Errorf("SuggestShows exceeded max: %d", len(many))
	}
}
