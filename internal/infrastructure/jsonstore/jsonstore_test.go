package jsonstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	"github.com/fantasmadigital/nexus-erp/internal/infrastructure/jsonstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Documento JSON completo por clave de almacenamiento
// ──────────────────────────────────────────────────────────────────────────────

func TestDocument_CargaInicialVacia(t *testing.T) {
	doc, err := jsonstore.NewDocument[[]string](t.TempDir(), "cosas")
	require.NoError(t, err)

	value, found, err := doc.Load()
	require.NoError(t, err)
	assert.False(t, found, "clave nunca guardada: estado inicial, no error")
	assert.Nil(t, value)
}

func TestDocument_GuardaYRecarga(t *testing.T) {
	dir := t.TempDir()
	doc, err := jsonstore.NewDocument[[]string](dir, "cosas")
	require.NoError(t, err)

	require.NoError(t, doc.Save([]string{"a", "b"}))

	// Documento nuevo sobre la misma clave: simula recarga de sesión.
	doc2, err := jsonstore.NewDocument[[]string](dir, "cosas")
	require.NoError(t, err)
	value, found, err := doc2.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"a", "b"}, value)
}

// ──────────────────────────────────────────────────────────────────────────────
// Semántica del almacén de registros dinámicos
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordRepo_CreateAntepone(t *testing.T) {
	repo, err := jsonstore.NewRecordRepository(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, repo.Create(&entity.Record{ID: "r1", Type: entity.RecordTypeProduct}))
	require.NoError(t, repo.Create(&entity.Record{ID: "r2", Type: entity.RecordTypeProduct}))

	list, err := repo.ListByType(entity.RecordTypeProduct)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r2", list[0].ID, "lo más reciente va primero")
	assert.Equal(t, "r1", list[1].ID)
}

func TestRecordRepo_UpdateFusionaCampos(t *testing.T) {
	repo, err := jsonstore.NewRecordRepository(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, repo.Create(&entity.Record{
		ID: "r1", Type: entity.RecordTypeProduct,
		Fields: map[string]any{"SKU": "A-1", "Nombre": "Café"},
	}))

	require.NoError(t, repo.Update("r1", map[string]any{"Nombre": "Café molido", "Stock": 10.0}))

	rec, err := repo.GetByID("r1")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "A-1", rec.Fields["SKU"], "los campos no tocados sobreviven")
	assert.Equal(t, "Café molido", rec.Fields["Nombre"])
	assert.Equal(t, 10.0, rec.Fields["Stock"])
	assert.False(t, rec.UpdatedAt.IsZero())
}

func TestRecordRepo_UpdateInexistenteEsNoOp(t *testing.T) {
	repo, err := jsonstore.NewRecordRepository(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, repo.Update("fantasma", map[string]any{"x": 1}))
}

func TestRecordRepo_DeleteYStatus(t *testing.T) {
	repo, err := jsonstore.NewRecordRepository(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, repo.Create(&entity.Record{ID: "t1", Type: entity.RecordTypeTransfer, Status: entity.TransferStatusActiva}))
	require.NoError(t, repo.UpdateStatus("t1", entity.TransferStatusAnulada))

	rec, err := repo.GetByID("t1")
	require.NoError(t, err)
	assert.Equal(t, entity.TransferStatusAnulada, rec.Status)

	require.NoError(t, repo.Delete("t1"))
	rec, err = repo.GetByID("t1")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ganchos de carga del almacén de tareas: purga + migración de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestTaskRepo_MigraYPurgaAlCargar(t *testing.T) {
	dir := t.TempDir()

	// Sembrar un documento con datos heredados: estados en español y un
	// registro de prueba sin categoría.
	seed, err := jsonstore.NewDocument[[]*entity.NexusTask](dir, "tasks")
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, seed.Save([]*entity.NexusTask{
		{ID: "t1", Title: "Facturar lote", Category: "ventas", Status: "En progreso", CreatedAt: now},
		{ID: "t2", Title: "test", Category: "ventas", Status: "TODO", CreatedAt: now},
		{ID: "t3", Title: "Conteo físico", Category: "inventario", Status: "hecho", CreatedAt: now},
	}))

	repo, err := jsonstore.NewTaskRepository(dir)
	require.NoError(t, err)

	list, err := repo.List()
	require.NoError(t, err)
	require.Len(t, list, 2, "el registro de prueba se purga")

	t1, err := repo.GetByID("t1")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusInProgress, t1.Status)

	t3, err := repo.GetByID("t3")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusDone, t3.Status)

	// La migración se persiste: una recarga ya no encuentra nada que migrar.
	repo2, err := jsonstore.NewTaskRepository(dir)
	require.NoError(t, err)
	t1, err = repo2.GetByID("t1")
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusInProgress, t1.Status)
}

func TestTaskRepo_CountByStatus(t *testing.T) {
	repo, err := jsonstore.NewTaskRepository(t.TempDir())
	require.NoError(t, err)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(&entity.NexusTask{ID: id, Title: "Tarea " + id, Category: "ops", Status: entity.TaskStatusInProgress}))
	}
	n, err := repo.CountByStatus(entity.TaskStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = repo.CountByStatus(entity.TaskStatusDone)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
