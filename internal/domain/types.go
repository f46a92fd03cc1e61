package domain

import "time"

// Project is one record of the static project catalog. Field names match the
// catalog document.
type Project struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	Description   []string `json:"description"`
	MainImage     string   `json:"mainImage"`
	Location      string   `json:"location"`
	Size          string   `json:"size"`
	Completed     string   `json:"completed"`
	GalleryImages []string `json:"galleryImages"`
}

// ProjectList is the top-level shape of the catalog document.
type ProjectList struct {
	Projects []Project `json:"projects"`
}

type ContactMessage struct {
	ID         string
	FirstName  string
	LastName   string
	Email      string
	Message    string
	ReceivedAt time.Time
}
