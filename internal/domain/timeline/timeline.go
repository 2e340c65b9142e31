package timeline

import "context"

// Entry is one step of the experience chronology shown on the about page.
type Entry struct {
	ID          string `json:"id"`
	Year        string `json:"year"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

type Repository interface {
	List(ctx context.Context) ([]*Entry, error)
}
