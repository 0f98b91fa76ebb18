package model

// SampleLogs returns the built-in entries used when nothing has been
// persisted yet. Each call returns a fresh copy.
func SampleLogs() []Log {
	return []Log{
		{
			ID:          "1",
			Title:       "Amazing Barcelona Trip",
			Description: "Explored the beautiful city of Barcelona. Visited Sagrada Familia and Park Güell.",
			Location:    "Barcelona, Spain",
			Latitude:    41.3851,
			Longitude:   2.1734,
			Date:        "2023-06-15T00:00:00.000Z",
			Rating:      5,
			Images: []string{
				"https://images.pexels.com/photos/819764/pexels-photo-819764.jpeg",
				"https://images.pexels.com/photos/1388030/pexels-photo-1388030.jpeg",
			},
			Tags:   []string{"City", "Culture", "Architecture"},
			UserID: "user-123",
		},
		{
			ID:          "2",
			Title:       "Serene Beach Getaway",
			Description: "Relaxed on the beautiful beaches of Bali. Enjoyed the sunset views and local cuisine.",
			Location:    "Bali, Indonesia",
			Latitude:    -8.4095,
			Longitude:   115.1889,
			Date:        "2023-08-22T00:00:00.000Z",
			Rating:      4,
			Images: []string{
				"https://images.pexels.com/photos/1430677/pexels-photo-1430677.jpeg",
				"https://images.pexels.com/photos/1802255/pexels-photo-1802255.jpeg",
			},
			Tags:   []string{"Beach", "Relaxation", "Food"},
			UserID: "user-123",
		},
		{
			ID:          "3",
			Title:       "Mountain Hiking Adventure",
			Description: "Hiked the stunning Alps. Breathtaking views and challenging trails made this a memorable trip.",
			Location:    "Swiss Alps, Switzerland",
			Latitude:    46.8182,
			Longitude:   8.2275,
			Date:        "2023-10-05T00:00:00.000Z",
			Rating:      5,
			Images: []string{
				"https://images.pexels.com/photos/414122/pexels-photo-414122.jpeg",
				"https://images.pexels.com/photos/417074/pexels-photo-417074.jpeg",
			},
			Tags:   []string{"Mountain", "Hiking", "Adventure"},
			UserID: "google-user-123",
		},
	}
}
