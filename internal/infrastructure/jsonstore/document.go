// Package jsonstore implementa el puerto de persistencia local: cada colección
// serializa su estado completo como un único documento JSON bajo una clave de
// almacenamiento propia en cada mutación, y se deserializa al cargar. No hay
// escrituras parciales ni deltas; el escritor es único (sesión local).
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Document documento JSON completo bajo una clave de almacenamiento.
type Document[T any] struct {
	mu   sync.Mutex
	path string
}

// NewDocument construye el documento para la clave dada dentro del directorio
// de almacenamiento. El archivo se crea en el primer Save.
func NewDocument[T any](dir, key string) (*Document[T], error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("jsonstore: crear directorio %s: %w", dir, err)
	}
	return &Document[T]{path: filepath.Join(dir, key+".json")}, nil
}

// Load deserializa el documento completo. found=false si la clave nunca se ha
// guardado (estado inicial vacío, no un error).
func (d *Document[T]) Load() (value T, found bool, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return value, false, nil
		}
		return value, false, fmt.Errorf("jsonstore: leer %s: %w", d.path, err)
	}
	if err := json.Unmarshal(data, &value); err != nil {
		return value, false, fmt.Errorf("jsonstore: deserializar %s: %w", d.path, err)
	}
	return value, true, nil
}

// Save serializa y escribe el estado completo. Escritura a archivo temporal y
// rename para no dejar un documento a medias si el proceso muere escribiendo.
func (d *Document[T]) Save(value T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: serializar %s: %w", d.path, err)
	}
	tmp := d.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("jsonstore: escribir %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, d.path); err != nil {
		return fmt.Errorf("jsonstore: renombrar %s: %w", tmp, err)
	}
	return nil
}
