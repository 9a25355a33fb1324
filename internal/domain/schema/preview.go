package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Vista previa de imágenes durante la edición.
//
// La previsualización es un recurso con alcance acotado a la sesión de
// edición: se adquiere al seleccionar archivo y se libera en toda salida
// (archivo reemplazado, campo limpiado, formulario cerrado). Modelarlo como
// par adquirir/liberar explícito evita que los archivos temporales crezcan
// sin límite a lo largo de muchas sesiones de edición.

// Preview manejador de una vista previa activa.
type Preview struct {
	ID   string
	Path string
}

// PreviewManager administra las vistas previas activas de una sesión. Una
// adquisición para el mismo campo libera primero la anterior (reemplazo de
// archivo).
type PreviewManager struct {
	mu     sync.Mutex
	dir    string
	active map[string]*Preview // clave: campo propietario
}

// NewPreviewManager construye el administrador sobre un directorio temporal.
func NewPreviewManager(dir string) (*PreviewManager, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "nexus-previews")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("preview: crear directorio: %w", err)
	}
	return &PreviewManager{dir: dir, active: make(map[string]*Preview)}, nil
}

// Acquire crea la vista previa del campo con los bytes del archivo elegido.
// Si el campo ya tenía una activa, se libera antes de crear la nueva.
func (m *PreviewManager) Acquire(fieldKey string, data []byte) (*Preview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if old, ok := m.active[fieldKey]; ok {
		_ = os.Remove(old.Path)
		delete(m.active, fieldKey)
	}

	id := uuid.New().String()
	path := filepath.Join(m.dir, id)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("preview: escribir archivo: %w", err)
	}
	p := &Preview{ID: id, Path: path}
	m.active[fieldKey] = p
	return p, nil
}

// Release libera la vista previa del campo (archivo reemplazado o limpiado).
// Liberar un campo sin vista previa es un no-op.
func (m *PreviewManager) Release(fieldKey string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.active[fieldKey]; ok {
		_ = os.Remove(p.Path)
		delete(m.active, fieldKey)
	}
}

// ReleaseAll libera todas las vistas previas activas (cierre del formulario).
func (m *PreviewManager) ReleaseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, p := range m.active {
		_ = os.Remove(p.Path)
		delete(m.active, key)
	}
}

// ActiveCount cantidad de vistas previas vivas (instrumentación y tests).
func (m *PreviewManager) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.active)
}
