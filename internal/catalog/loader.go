package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/xeipuuv/gojsonschema"
)

// Load читает каталог из настроенного источника. Вызывается один раз при старте.
func Load(source, path string) (*Dataset, error) {
	switch strings.ToLower(source) {
	case "", "json":
		return LoadJSON(path)
	case "sqlite":
		return LoadSQLite(path)
	}
	return nil, fmt.Errorf("unknown catalog source %q (want json or sqlite)", source)
}

// LoadJSON loads and validates a catalogue file. The file is checked against
// the embedded schema before decoding; descriptions are sanitized because
// catalogue exports routinely carry markup from their scraped origins.
func LoadJSON(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	res, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(catalogSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("catalog %s is not valid: %s", path, strings.Join(msgs, "; "))
	}

	var file struct {
		Books   []Book            `json:"books"`
		Authors map[string]string `json:"authors"`
		Genres  map[string]string `json:"genres"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return finishLoad(file.Books, file.Authors, file.Genres)
}

// finishLoad applies the invariants shared by every loader: sanitized
// descriptions, unique ids, populated lookup index.
func finishLoad(books []Book, authors, genres map[string]string) (*Dataset, error) {
	policy := bluemonday.StrictPolicy()
	seen := make(map[string]bool, len(books))
	for i := range books {
		b := &books[i]
		if seen[b.ID] {
			return nil, fmt.Errorf("duplicate book id %q", b.ID)
		}
		seen[b.ID] = true
		b.Description = policy.Sanitize(b.Description)
	}
	return NewDataset(books, authors, genres), nil
}
