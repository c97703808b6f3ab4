package domain

import "errors"

var ErrFactoryNotFound = errors.New("factory not found")

// FactoryProfile is a public directory entry for a manufacturer.
type FactoryProfile struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Logo           string   `json:"logo,omitempty"`
	Location       string   `json:"location"`
	Categories     []string `json:"categories"`
	Description    string   `json:"description"`
	Certifications []string `json:"certifications"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"review_count"`
	FeaturedImage  string   `json:"featured_image,omitempty"`
	Verified       bool     `json:"verified"`
}
