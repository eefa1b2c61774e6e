package browser

import (
	"github.com/sirupsen/logrus"

	"polka/internal/catalog"
	"polka/internal/metrics"
	"polka/internal/pager"
	"polka/internal/render"
	"polka/internal/search"
)

// Session контроллер взаимодействия: владеет текущей выдачей, курсором
// пагинации и флагами трех оверлеев. Все мутации идут через его методы,
// никакого разделяемого состояния снаружи нет.
type Session struct {
	data *catalog.Dataset
	sur  *Surfaces
	rnd  *render.Renderer
	cur  *pager.Cursor

	matches []catalog.Book

	searchOpen   bool
	settingsOpen bool
	detailOpen   bool
}

// New собирает сессию над загруженным каталогом. До первого поиска выдача пуста.
func New(data *catalog.Dataset, sur *Surfaces, rnd *render.Renderer, pageSize int) *Session {
	return &Session{
		data: data,
		sur:  sur,
		rnd:  rnd,
		cur:  pager.New(pageSize),
	}
}

// Search обрабатывает submit формы поиска: новая выдача целиком заменяет
// старую, курсор возвращается на первую страницу, оверлей поиска закрывается.
func (s *Session) Search(c search.Criteria) {
	s.matches = search.Filter(s.data.Books, c)
	s.cur.Reset(len(s.matches))
	s.searchOpen = false

	if len(s.matches) == 0 {
		s.rnd.RenderNoResults(s.sur.Status)
		metrics.SearchesTotal.WithLabelValues("empty").Inc()
	} else {
		lo, hi := s.cur.FirstSlice()
		s.rnd.RenderPreviews(s.sur.List, s.matches[lo:hi], s.data, true)
		metrics.SearchesTotal.WithLabelValues("found").Inc()
	}
	s.rnd.RenderAdvance(s.sur.Advance, s.cur.Remaining())

	logrus.WithFields(logrus.Fields{
		"matches": len(s.matches),
		"visible": s.cur.VisibleCount(),
	}).Debug("search completed")
}

// More подливает следующую страницу к уже показанным строкам.
// Когда показывать нечего — тихий no-op, контрол и так выключен.
func (s *Session) More() {
	if !s.cur.HasMore() {
		return
	}
	lo, hi := s.cur.NextSlice()
	s.rnd.RenderPreviews(s.sur.List, s.matches[lo:hi], s.data, false)
	s.cur.Advance()
	s.rnd.RenderAdvance(s.sur.Advance, s.cur.Remaining())
	metrics.PagesShownTotal.Inc()
}

// Open открывает панель книги по id из строки превью. Неизвестный id
// не меняет состояние вообще: молчаливая деградация, не ошибка.
func (s *Session) Open(id string) {
	b, ok := s.data.BookByID(id)
	if !ok {
		metrics.DetailOpensTotal.WithLabelValues("miss").Inc()
		return
	}
	s.rnd.RenderDetail(s.sur.Detail, b, s.data)
	s.detailOpen = true
	metrics.DetailOpensTotal.WithLabelValues("hit").Inc()
}

// Close закрывает панель книги.
func (s *Session) Close() {
	s.detailOpen = false
}

// SetTheme обрабатывает submit формы настроек: применяет палитру и
// закрывает оверлей. Значение уже проверено в render.ParseTheme.
func (s *Session) SetTheme(t render.Theme) {
	s.rnd.SetTheme(t)
	s.settingsOpen = false
	metrics.ThemeSwitchesTotal.WithLabelValues(string(t)).Inc()
}

// Прямые переключатели оверлеев: открыть/отменить, без промежуточных состояний.

func (s *Session) OpenSearch()     { s.searchOpen = true }
func (s *Session) CancelSearch()   { s.searchOpen = false }
func (s *Session) OpenSettings()   { s.settingsOpen = true }
func (s *Session) CancelSettings() { s.settingsOpen = false }

// Accessors for the host loop and tests.

func (s *Session) SearchOpen() bool   { return s.searchOpen }
func (s *Session) SettingsOpen() bool { return s.settingsOpen }
func (s *Session) DetailOpen() bool   { return s.detailOpen }

// Matches returns the current result set length.
func (s *Session) Matches() int { return len(s.matches) }

// VisibleCount returns how many rows the list currently shows.
func (s *Session) VisibleCount() int { return s.cur.VisibleCount() }

// Remaining returns the advance-control badge value.
func (s *Session) Remaining() int { return s.cur.Remaining() }

// Theme returns the active theme.
func (s *Session) Theme() render.Theme { return s.rnd.Theme() }
