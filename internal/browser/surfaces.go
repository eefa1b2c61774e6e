package browser

import (
	"fmt"
	"io"
)

// Имена поверхностей, которые обязан предоставить хост интерфейса
const (
	SurfaceList    = "list"    // таблица превью
	SurfaceDetail  = "detail"  // панель одной книги
	SurfaceStatus  = "status"  // строка "No results found."
	SurfaceAdvance = "advance" // контрол "Show more (N)"
)

var requiredSurfaces = []string{SurfaceList, SurfaceDetail, SurfaceStatus, SurfaceAdvance}

// Surfaces связывает именованные области вывода с writer'ами.
// Контроллер пишет только сюда и никогда напрямую в терминал.
type Surfaces struct {
	List    io.Writer
	Detail  io.Writer
	Status  io.Writer
	Advance io.Writer
}

// BindSurfaces resolves the named bindings. Every required name must be bound
// to exactly one non-nil writer and no unknown names may appear; otherwise
// initialization fails instead of limping along with a dead surface.
func BindSurfaces(bindings map[string]io.Writer) (*Surfaces, error) {
	for _, name := range requiredSurfaces {
		w, ok := bindings[name]
		if !ok || w == nil {
			return nil, fmt.Errorf("surface %q is not bound", name)
		}
	}
	for name := range bindings {
		known := false
		for _, r := range requiredSurfaces {
			if name == r {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown surface %q", name)
		}
	}
	return &Surfaces{
		List:    bindings[SurfaceList],
		Detail:  bindings[SurfaceDetail],
		Status:  bindings[SurfaceStatus],
		Advance: bindings[SurfaceAdvance],
	}, nil
}

// SingleWriter binds every surface to one writer. The terminal host uses this;
// tests bind separate buffers to observe each surface on its own.
func SingleWriter(w io.Writer) *Surfaces {
	return &Surfaces{List: w, Detail: w, Status: w, Advance: w}
}
