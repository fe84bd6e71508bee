package job

import "time"

// Posting is the shape a cached search stores and handlers return. JSON keys
// match the serialized cache payload, so a cache hit round-trips verbatim.
type Posting struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Desc     string `json:"desc"`
	FullDesc string `json:"full_desc"`
	URL      string `json:"url"`
	Date     string `json:"date"`
}

// SavedJob is a user bookmark. (user_email, url) is unique.
type SavedJob struct {
	ID        int64     `json:"id"`
	UserEmail string    `json:"user_email"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Location  string    `json:"location"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
