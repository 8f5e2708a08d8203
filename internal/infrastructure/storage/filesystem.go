// Package storage persiste los artefactos del reporte en el sistema de archivos local.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// FileStore escribe archivos de forma atómica: primero a un temporal en el
// mismo directorio y luego rename. Si algo falla no queda un archivo parcial
// en la ruta final.
type FileStore struct{}

// NewFileStore construye el store.
func NewFileStore() *FileStore { return &FileStore{} }

// EnsureDir crea el directorio (y sus padres) si no existe.
func (s *FileStore) EnsureDir(dir string) error {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return errors.New("storage: directorio requerido")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: crear directorio: %w", err)
	}
	return nil
}

// WriteAtomic abre un temporal, delega la escritura en write y lo publica en path.
func (s *FileStore) WriteAtomic(ctx context.Context, path string, write func(w io.Writer) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("storage: ruta requerida")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("storage: crear temporal: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("storage: sincronizar: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("storage: cerrar: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("storage: permisos: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("storage: publicar %s: %w", path, err)
	}
	return nil
}

// WriteFile escribe data completo en path de forma atómica.
func (s *FileStore) WriteFile(ctx context.Context, path string, data []byte) error {
	return s.WriteAtomic(ctx, path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
