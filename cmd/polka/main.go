package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"polka/internal/browser"
	"polka/internal/catalog"
	"polka/internal/config"
	"polka/internal/logger"
	"polka/internal/parser"
	"polka/internal/render"
)

func main() {
	cfg := config.Get()
	if cfg.CLI.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	data, err := catalog.Load(cfg.Catalog.Source, cfg.Catalog.Path)
	if err != nil {
		logrus.Fatalf("failed to load catalog: %v", err)
	}

	theme, err := render.ParseTheme(cfg.Browse.Theme)
	if err != nil {
		logrus.Fatalf("bad theme in config: %v", err)
	}
	rnd := render.New(theme, true)

	oneShot := len(os.Args) > 1

	// В one-shot режиме все поверхности идут в stdout одним потоком;
	// интерактивный запуск проходит полную проверку привязок.
	var sur *browser.Surfaces
	if oneShot {
		sur = browser.SingleWriter(os.Stdout)
	} else {
		sur, err = browser.BindSurfaces(map[string]io.Writer{
			browser.SurfaceList:    os.Stdout,
			browser.SurfaceDetail:  os.Stdout,
			browser.SurfaceStatus:  os.Stdout,
			browser.SurfaceAdvance: os.Stdout,
		})
		if err != nil {
			logrus.Fatalf("surface binding failed: %v", err)
		}
	}

	session := browser.New(data, sur, rnd, cfg.Browse.PageSize)

	if cfg.Metrics.Port > 0 {
		go serveMetrics(cfg.Metrics.Port)
	}

	if oneShot {
		runSearch(context.Background(), session, strings.Join(os.Args[1:], " "))
		return
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.CLI.History); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.CLI.History); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println("Polka Interactive Shell")
	fmt.Printf("Catalog: %d books, %d authors, %d genres. Type 'help' for commands.\n",
		len(data.Books), len(data.Authors), len(data.Genres))

	seq := 0
	for {
		input, err := line.Prompt("\033[32mpolka>\033[0m ")
		if err != nil {
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)
		if input == "exit" || input == "quit" {
			return
		}

		seq++
		ctx := logger.ContextWithID(context.Background(), fmt.Sprintf("cmd-%d", seq))
		dispatch(ctx, line, session, input)
	}
}

func dispatch(ctx context.Context, line *liner.State, s *browser.Session, input string) {
	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "help":
		printHelp()

	case "more":
		s.More()

	case "open":
		s.Open(rest)

	case "close":
		s.Close()

	case "theme":
		applyTheme(s, rest)

	case "settings":
		// Оверлей настроек: вложенный prompt, пустой ввод = отмена
		s.OpenSettings()
		choice, err := line.Prompt("theme (day/night)> ")
		if err != nil || strings.TrimSpace(choice) == "" {
			s.CancelSettings()
			return
		}
		applyTheme(s, choice)

	case "search":
		if rest == "" {
			// Оверлей поиска: вложенный prompt; пустая форма легальна
			// и означает "показать все"
			s.OpenSearch()
			q, err := line.Prompt("query> ")
			if err != nil {
				s.CancelSearch()
				return
			}
			runSearch(ctx, s, q)
			return
		}
		runSearch(ctx, s, rest)

	default:
		// Все, что не команда — поисковый запрос
		runSearch(ctx, s, input)
	}
}

func runSearch(ctx context.Context, s *browser.Session, query string) {
	defer logger.Track(ctx, "search")()

	start := time.Now()
	s.Search(parser.Parse(query))
	fmt.Printf("\n⏱ %d of %d shown in %v\n\n", s.VisibleCount(), s.Matches(), time.Since(start))
}

func applyTheme(s *browser.Session, choice string) {
	t, err := render.ParseTheme(choice)
	if err != nil {
		fmt.Println(err)
		s.CancelSettings()
		return
	}
	s.SetTheme(t)
}

func printHelp() {
	fmt.Println(`Commands:
  <text>                      search titles containing <text>
  genre:<id> author:<id> title:<text>
                              field search, any combination
  search                      open the search form
  more                        show the next page of results
  open <id>                   show details for one book
  close                       close the detail panel
  settings                    open the settings form
  theme day|night             switch the color theme
  help                        this message
  exit                        leave`)
}

func serveMetrics(port int) {
	addr := fmt.Sprintf(":%d", port)
	http.Handle("/metrics", promhttp.Handler())
	logrus.Infof("📊 Metrics exporter started on %s/metrics", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logrus.WithError(err).Error("metrics exporter stopped")
	}
}
