package handlers

import "film-catalog/internal/models"

// requiredFilmFields is the full column set a film draft must supply.
var requiredFilmFields = []string{
	"title", "movie_banner", "description", "director", "producer", "release_date", "rt_score",
}

// FilmCreateRequest uses pointer fields so an absent key and a zero value
// can be told apart when validating the draft.
type FilmCreateRequest struct {
	Title       *string `json:"title"`
	MovieBanner *string `json:"movie_banner"`
	Description *string `json:"description"`
	Director    *string `json:"director"`
	Producer    *string `json:"producer"`
	ReleaseDate *int    `json:"release_date"`
	RTScore     *int    `json:"rt_score"`
}

// Missing returns the required fields absent from the request.
func (r *FilmCreateRequest) Missing() []string {
	var missing []string
	present := []bool{
		r.Title != nil, r.MovieBanner != nil, r.Description != nil,
		r.Director != nil, r.Producer != nil, r.ReleaseDate != nil, r.RTScore != nil,
	}
	for i, ok := range present {
		if !ok {
			missing = append(missing, requiredFilmFields[i])
		}
	}
	return missing
}

// Film converts a complete request into the model. Call only after Missing
// returned an empty slice.
func (r *FilmCreateRequest) Film() *models.Film {
	return &models.Film{
		Title:       *r.Title,
		MovieBanner: *r.MovieBanner,
		Description: *r.Description,
		Director:    *r.Director,
		Producer:    *r.Producer,
		ReleaseDate: *r.ReleaseDate,
		RTScore:     *r.RTScore,
	}
}

// FilmUpdateRequest is a partial patch; only the keys present in the body
// are applied.
type FilmUpdateRequest struct {
	Title       *string `json:"title"`
	MovieBanner *string `json:"movie_banner"`
	Description *string `json:"description"`
	Director    *string `json:"director"`
	Producer    *string `json:"producer"`
	ReleaseDate *int    `json:"release_date"`
	RTScore     *int    `json:"rt_score"`
}

// Fields returns the supplied columns as an update map.
func (r *FilmUpdateRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.MovieBanner != nil {
		fields["movie_banner"] = *r.MovieBanner
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Director != nil {
		fields["director"] = *r.Director
	}
	if r.Producer != nil {
		fields["producer"] = *r.Producer
	}
	if r.ReleaseDate != nil {
		fields["release_date"] = *r.ReleaseDate
	}
	if r.RTScore != nil {
		fields["rt_score"] = *r.RTScore
	}
	return fields
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
