package tvmaze

import "testing"

func int64Ptr(v int64) *int64   { return &v }
func intPtr(v int) *int         { return &v }
func strPtr(v string) *string   { return &v }
func f64Ptr(v float64) *float64 { return &v }

func TestMapShowsDropsIncompleteRecords(t *testing.T) {
	dtos := []showDTO{
		{ID: int64Ptr(1), Name: strPtr("Kept")},
		{ID: nil, Name: strPtr("No ID")},
		{ID: int64Ptr(3), Name: nil},
		{ID: int64Ptr(4), Name: strPtr("Also Kept")},
	}

	shows := mapShows(dtos)
	if len(shows) != 2 {
		t.Fatalf("mapped %d shows, want 2", len(shows))
	}
	if shows[0].Name != "Kept" || shows[1].Name != "Also Kept" {
		t.Errorf("wrong records survived: %v", shows)
	}
}

func TestMapShowOptionalFields(t *testing.T) {
	full := mapShow(showDTO{
		ID:      int64Ptr(1),
		Name:    strPtr("Orbit"),
		Runtime: intPtr(45),
		Rating:  ratingDTO{Average: f64Ptr(7.5)},
		Image:   &imageDTO{Medium: "med.jpg", Original: "orig.jpg"},
	})
	if full.Runtime != 45 || full.Rating != 7.5 || full.Image != "med.jpg" {
		t.Errorf("optional fields lost: %+v", full)
	}

	sparse := mapShow(showDTO{ID: int64Ptr(2), Name: strPtr("Bare")})
	if sparse.Runtime != 0 || sparse.Rating != 0 || sparse.Image != "" {
		t.Errorf("absent optionals not zero: %+v", sparse)
	}
}

func TestMapEpisodesSpecials(t *testing.T) {
	dtos := []episodeDTO{
		{ID: int64Ptr(1), Name: strPtr("Pilot"), Season: intPtr(1), Number: intPtr(1)},
		{ID: int64Ptr(2), Name: strPtr("Holiday"), Season: nil, Number: nil},
		{ID: int64Ptr(3), Name: strPtr("Half"), Season: intPtr(2), Number: nil},
	}

	episodes := mapEpisodes(dtos)
	if len(episodes) != 3 {
		t.Fatalf("mapped %d episodes, want 3", len(episodes))
	}

	if episodes[0].Special {
		t.Error("numbered episode marked Special")
	}
	if !episodes[1].Special {
		t.Error("null season and number not marked Special")
	}
	if !episodes[2].Special {
		t.Error("null number alone not marked Special")
	}

	if episodes[0].Code() != "S01E01" {
		t.Errorf("Code() = %q, want S01E01", episodes[0].Code())
	}
	if episodes[1].Code() != "Special" {
		t.Errorf("Code() = %q, want Special", episodes[1].Code())
	}
}
