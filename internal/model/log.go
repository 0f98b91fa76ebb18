package model

// Log is a single travel-journal entry.
type Log struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Date        string   `json:"date"`
	Rating      int      `json:"rating"`
	Images      []string `json:"images"`
	Tags        []string `json:"tags"`
	UserID      string   `json:"userId"`
}

// NewLog holds the fields of a log that has not been assigned an id yet.
// Latitude and Longitude are pointers so a missing coordinate can be told
// apart from the equator or the prime meridian.
type NewLog struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Date        string   `json:"date"`
	Rating      int      `json:"rating"`
	Images      []string `json:"images"`
	Tags        []string `json:"tags"`
	UserID      string   `json:"userId"`
}

// WithID builds the stored entry. Nil sequences become empty ones.
func (n NewLog) WithID(id string) Log {
	l := Log{
		ID:          id,
		Title:       n.Title,
		Description: n.Description,
		Location:    n.Location,
		Date:        n.Date,
		Rating:      n.Rating,
		Images:      cloneStrings(n.Images),
		Tags:        cloneStrings(n.Tags),
		UserID:      n.UserID,
	}
	if n.Latitude != nil {
		l.Latitude = *n.Latitude
	}
	if n.Longitude != nil {
		l.Longitude = *n.Longitude
	}
	return l
}

// WithoutID returns the entry's fields in their unsaved form.
func (l Log) WithoutID() NewLog {
	lat, lng := l.Latitude, l.Longitude
	return NewLog{
		Title:       l.Title,
		Description: l.Description,
		Location:    l.Location,
		Latitude:    &lat,
		Longitude:   &lng,
		Date:        l.Date,
		Rating:      l.Rating,
		Images:      cloneStrings(l.Images),
		Tags:        cloneStrings(l.Tags),
		UserID:      l.UserID,
	}
}

// Clone returns a deep copy of the entry.
func (l Log) Clone() Log {
	l.Images = cloneStrings(l.Images)
	l.Tags = cloneStrings(l.Tags)
	return l
}

// LogPatch is a partial update. Nil fields are left untouched; a non-nil
// slice replaces the stored slice as a whole, it is never merged.
type LogPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Date        *string   `json:"date,omitempty"`
	Rating      *int      `json:"rating,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	UserID      *string   `json:"userId,omitempty"`
}

// Apply merges the patch into l field by field and returns the result.
// The id is never changed.
func (p LogPatch) Apply(l Log) Log {
	out := l.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.Latitude != nil {
		out.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		out.Longitude = *p.Longitude
	}
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.Rating != nil {
		out.Rating = *p.Rating
	}
	if p.Images != nil {
		out.Images = cloneStrings(*p.Images)
	}
	if p.Tags != nil {
		out.Tags = cloneStrings(*p.Tags)
	}
	if p.UserID != nil {
		out.UserID = *p.UserID
	}
	return out
}

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
