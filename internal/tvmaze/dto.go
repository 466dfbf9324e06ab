package tvmaze

// showDTO mirrors one element of the /shows?page={n} response array.
// Required fields are pointers so records missing id or name can be
// detected and dropped rather than mapped with zero values.
type showDTO struct {
	ID      *int64    `json:"id"`
	URL     string    `json:"url,omitempty"`
	Name    *string   `json:"name"`
	Genres  []string  `json:"genres,omitempty"`
	Status  string    `json:"status,omitempty"`
	Runtime *int      `json:"runtime,omitempty"`
	Rating  ratingDTO `json:"rating,omitempty"`
	Image   *imageDTO `json:"image,omitempty"`
	Summary string    `json:"summary,omitempty"`
}

// episodeDTO mirrors one element of the /shows/{id}/episodes response array.
// Season and number are null for specials and show-level entries.
type episodeDTO struct {
	ID      *int64    `json:"id"`
	URL     string    `json:"url,omitempty"`
	Name    *string   `json:"name"`
	Season  *int      `json:"season,omitempty"`
	Number  *int      `json:"number,omitempty"`
	Image   *imageDTO `json:"image,omitempty"`
	Summary string    `json:"summary,omitempty"`
}

// ratingDTO wraps the nested rating object; average is null when unrated.
type ratingDTO struct {
	Average *float64 `json:"average"`
}

// imageDTO wraps the nested image object.
type imageDTO struct {
	Medium   string `json:"medium,omitempty"`
	Original string `json:"original,omitempty"`
}
