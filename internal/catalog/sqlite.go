package catalog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// LoadSQLite reads a catalogue out of a local sqlite file. The file is opened
// read-only and only ever read once; it is a data source, not storage.
//
// Expected tables:
//
//	books(id TEXT, title TEXT, author TEXT, genres TEXT, description TEXT, image TEXT, published TEXT)
//	authors(id TEXT, name TEXT)
//	genres(id TEXT, name TEXT)
//
// books.genres is a comma-separated id list, published is RFC 3339.
func LoadSQLite(path string) (*Dataset, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}
	defer db.Close()

	var books []Book

	rows, err := db.Query(`SELECT id, title, author, genres, description, image, published FROM books ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var b Book
		var genres, published string
		if err := rows.Scan(&b.ID, &b.Title, &b.AuthorID, &genres, &b.Description, &b.Image, &published); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		if genres != "" {
			b.GenreIDs = strings.Split(genres, ",")
		}
		if published != "" {
			t, err := time.Parse(time.RFC3339, published)
			if err != nil {
				return nil, fmt.Errorf("book %s: bad published date: %w", b.ID, err)
			}
			b.Published = t
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}

	authors, err := loadNames(db, "authors")
	if err != nil {
		return nil, err
	}
	genres, err := loadNames(db, "genres")
	if err != nil {
		return nil, err
	}

	return finishLoad(books, authors, genres)
}

func loadNames(db *sql.DB, table string) (map[string]string, error) {
	rows, err := db.Query(`SELECT id, name FROM ` + table)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out[id] = name
	}
	return out, rows.Err()
}
