package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"io"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"polka/internal/catalog"
)

var (
	registry      = prometheus.NewRegistry()
	processedRows = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shelfgen_processed_rows_total",
		Help: "Total number of processed catalogue rows",
	}, []string{"status"})
)

func init() {
	registry.MustRegister(processedRows)
}

type Config struct {
	Logging struct {
		LogPath string `yaml:"log_path"`
	} `yaml:"logging"`
	Metrics struct {
		PushgatewayURL string `yaml:"pushgateway_url"`
	} `yaml:"metrics"`
}

var (
	cfg Config
	log = logrus.New()
)

func initLogger(path string) {
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05", ForceColors: path == "",
	})
	writers := []io.Writer{os.Stdout}
	if path != "" {
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			writers = append(writers, f)
		}
	}
	log.SetOutput(io.MultiWriter(writers...))
}

// CSV columns: id, title, author_id, author_name, genre_ids(";"), genre_names(";"),
// description, image, published (RFC3339 or YYYY-MM-DD).
func main() {
	configPath := flag.String("config", "./shelfgen.yaml", "Path to config file")
	srcPath := flag.String("src", "", "Path to CSV export")
	dstPath := flag.String("out", "catalog.json", "Path to output catalog JSON")
	encName := flag.String("encoding", "utf-8", "Source encoding: utf-8 or cp1251")
	flag.Parse()

	cFile, _ := os.ReadFile(*configPath)
	_ = yaml.Unmarshal(cFile, &cfg)
	initLogger(cfg.Logging.LogPath)

	if *srcPath == "" {
		log.Fatal("-src is required")
	}

	f, err := os.Open(*srcPath)
	if err != nil {
		log.Fatalf("open source: %v", err)
	}
	defer f.Close()

	// Старые экспорты идут в cp1251, перекодируем на лету
	var reader io.Reader = f
	switch strings.ToLower(*encName) {
	case "utf-8", "utf8":
	case "cp1251":
		reader = transform.NewReader(f, charmap.Windows1251.NewDecoder())
	default:
		log.Fatalf("unknown encoding %q", *encName)
	}

	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		log.Fatalf("read csv: %v", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 && rows[0][0] == "id" {
		rows = rows[1:] // header row
	}

	var books []catalog.Book
	authors := make(map[string]string)
	genres := make(map[string]string)

	bar := progressbar.Default(int64(len(rows)), "converting")
	for i, rec := range rows {
		_ = bar.Add(1)
		if len(rec) < 9 {
			log.WithField("row", i+1).Warnf("short row (%d fields), skipped", len(rec))
			processedRows.WithLabelValues("skipped").Inc()
			continue
		}

		b := catalog.Book{
			ID:          strings.TrimSpace(rec[0]),
			Title:       strings.TrimSpace(rec[1]),
			AuthorID:    strings.TrimSpace(rec[2]),
			Description: rec[6],
			Image:       strings.TrimSpace(rec[7]),
		}
		if b.ID == "" || b.Title == "" {
			log.WithField("row", i+1).Warn("missing id or title, skipped")
			processedRows.WithLabelValues("skipped").Inc()
			continue
		}

		if rec[3] != "" {
			authors[b.AuthorID] = strings.TrimSpace(rec[3])
		}

		ids := splitList(rec[4])
		names := splitList(rec[5])
		b.GenreIDs = ids
		for j, id := range ids {
			if j < len(names) {
				genres[id] = names[j]
			}
		}

		if pub := strings.TrimSpace(rec[8]); pub != "" {
			t, err := parseDate(pub)
			if err != nil {
				log.WithField("row", i+1).Warnf("bad published date %q, kept empty", pub)
				processedRows.WithLabelValues("warn").Inc()
			} else {
				b.Published = t
			}
		}

		books = append(books, b)
		processedRows.WithLabelValues("ok").Inc()
	}

	out := struct {
		Books   []catalog.Book    `json:"books"`
		Authors map[string]string `json:"authors"`
		Genres  map[string]string `json:"genres"`
	}{Books: books, Authors: authors, Genres: genres}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("encode catalog: %v", err)
	}
	if err := os.WriteFile(*dstPath, data, 0644); err != nil {
		log.Fatalf("write catalog: %v", err)
	}
	log.Infof("Wrote %d books, %d authors, %d genres to %s", len(books), len(authors), len(genres), *dstPath)

	if cfg.Metrics.PushgatewayURL != "" {
		if err := push.New(cfg.Metrics.PushgatewayURL, "shelfgen").Gatherer(registry).Push(); err != nil {
			log.WithError(err).Warn("metrics push failed")
		}
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
