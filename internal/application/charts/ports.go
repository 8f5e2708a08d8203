package charts

import (
	"context"
	"io"

	"github.com/jhoicas/meganium-report/internal/application/dto"
)

// Renderer dibuja cada tipo de gráfico como PNG sobre w.
type Renderer interface {
	RenderBar(w io.Writer, spec dto.BarChartSpec) error
	RenderPie(w io.Writer, spec dto.PieChartSpec) error
	RenderLine(w io.Writer, spec dto.LineChartSpec) error
}

// ArtifactStore persiste las imágenes en el directorio de salida.
type ArtifactStore interface {
	EnsureDir(dir string) error
	WriteAtomic(ctx context.Context, path string, write func(w io.Writer) error) error
}
