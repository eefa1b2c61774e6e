package catalog

import "time"

// Book представляет одну запись каталога, неизменяемую после загрузки
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	AuthorID    string    `json:"author"`
	GenreIDs    []string  `json:"genres"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Published   time.Time `json:"published"`
}

// Year returns the publication year shown in the detail panel.
func (b Book) Year() int {
	return b.Published.Year()
}

// HasGenre reports whether the book is tagged with the given genre id.
func (b Book) HasGenre(id string) bool {
	for _, g := range b.GenreIDs {
		if g == id {
			return true
		}
	}
	return false
}

// Dataset весь каталог: книги в исходном порядке плюс справочники имен.
// Создается один раз при старте и дальше только читается.
type Dataset struct {
	Books   []Book
	Authors map[string]string
	Genres  map[string]string

	byID map[string]int // индекс в Books
}

// NewDataset builds an indexed dataset from already-decoded collections.
// The loaders go through this after their own validation.
func NewDataset(books []Book, authors, genres map[string]string) *Dataset {
	if authors == nil {
		authors = map[string]string{}
	}
	if genres == nil {
		genres = map[string]string{}
	}
	d := &Dataset{Books: books, Authors: authors, Genres: genres}
	d.index()
	return d
}

func (d *Dataset) index() {
	d.byID = make(map[string]int, len(d.Books))
	for i, b := range d.Books {
		d.byID[b.ID] = i
	}
}

// BookByID resolves a book by id. The second return is false for unknown ids;
// callers treat that as a no-op, nothing in the dataset ever raises.
func (d *Dataset) BookByID(id string) (Book, bool) {
	i, ok := d.byID[id]
	if !ok {
		return Book{}, false
	}
	return d.Books[i], true
}

// AuthorName resolves an author id to its display name, "Unknown" otherwise.
func (d *Dataset) AuthorName(id string) string {
	if name, ok := d.Authors[id]; ok {
		return name
	}
	return "Unknown"
}

// GenreName resolves a genre id to its display name, "Unknown" otherwise.
func (d *Dataset) GenreName(id string) string {
	if name, ok := d.Genres[id]; ok {
		return name
	}
	return "Unknown"
}
