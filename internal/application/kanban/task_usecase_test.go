package kanban_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantasmadigital/nexus-erp/internal/application/dto"
	appkanban "github.com/fantasmadigital/nexus-erp/internal/application/kanban"
	"github.com/fantasmadigital/nexus-erp/internal/domain"
	"github.com/fantasmadigital/nexus-erp/internal/domain/entity"
	kanbandomain "github.com/fantasmadigital/nexus-erp/internal/domain/kanban"
	"github.com/fantasmadigital/nexus-erp/internal/infrastructure/jsonstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados del tablero: límites WIP, auditoría append-only y salud.
// ──────────────────────────────────────────────────────────────────────────────

func newTaskUC(t *testing.T, limits kanbandomain.WIPLimits) *appkanban.TaskUseCase {
	t.Helper()
	repo, err := jsonstore.NewTaskRepository(t.TempDir())
	require.NoError(t, err)
	return appkanban.NewTaskUseCase(repo, limits)
}

func crear(t *testing.T, uc *appkanban.TaskUseCase, title string) *dto.TaskResponse {
	t.Helper()
	task, err := uc.Create(dto.CreateTaskRequest{Title: title, Category: "operaciones"})
	require.NoError(t, err)
	return task
}

func TestCreate_NaceEnTodoConAuditoria(t *testing.T) {
	uc := newTaskUC(t, kanbandomain.WIPLimits{})

	task := crear(t, uc, "Conteo físico de bodega")
	assert.Equal(t, entity.TaskStatusTodo, task.Status)
	assert.Equal(t, entity.TaskPriorityMedia, task.Priority, "prioridad por defecto")
	require.Len(t, task.History, 1)
	assert.Equal(t, "creada", task.History[0].Action)
}

func TestMove_ExitosoAgregaUnaEntradaDeAuditoria(t *testing.T) {
	uc := newTaskUC(t, kanbandomain.WIPLimits{InProgress: 5})

	task := crear(t, uc, "Facturar lote de noviembre")
	resp, err := uc.Move(task.ID, entity.TaskStatusInProgress)
	require.NoError(t, err)

	assert.True(t, resp.Moved)
	assert.Equal(t, entity.TaskStatusInProgress, resp.Task.Status)
	require.Len(t, resp.Task.History, 2, "creación + movimiento, exactamente")
	last := resp.Task.History[1]
	assert.Equal(t, "movida", last.Action)
	assert.Equal(t, entity.TaskStatusTodo, last.FromStatus)
	assert.Equal(t, entity.TaskStatusInProgress, last.ToStatus)
	assert.False(t, resp.Task.LastMovedAt.IsZero())
}

func TestMove_ColumnaSaturadaRechazaSinMutar(t *testing.T) {
	uc := newTaskUC(t, kanbandomain.WIPLimits{InProgress: 1})

	ocupante := crear(t, uc, "Tarea en curso")
	_, err := uc.Move(ocupante.ID, entity.TaskStatusInProgress)
	require.NoError(t, err)

	task := crear(t, uc, "Tarea en espera")
	resp, err := uc.Move(task.ID, entity.TaskStatusInProgress)
	require.NoError(t, err)

	assert.False(t, resp.Moved, "columna al límite: movimiento rechazado")
	assert.Equal(t, entity.TaskStatusTodo, resp.Task.Status, "la tarea queda intacta")
	assert.Len(t, resp.Task.History, 1, "sin entrada de auditoría en el rechazo")
}

func TestMove_MismoEstadoEsNoOp(t *testing.T) {
	uc := newTaskUC(t, kanbandomain.WIPLimits{Todo: 1})

	// La columna TODO ya está al límite con la propia tarea; mover al estado
	// actual no verifica WIP ni muta nada.
	task := crear(t, uc, "Tarea quieta")
	resp, err := uc.Move(task.ID, entity.TaskStatusTodo)
	require.NoError(t, err)
	assert.True(t, resp.Moved)
	assert.Len(t, resp.Task.History, 1)
}

func TestMove_EstadoInvalido(t *testing.T) {
	uc := newTaskUC(t, kanbandomain.WIPLimits{})
	task := crear(t, uc, "Tarea cualquiera")
	_, err := uc.Move(task.ID, "ARCHIVADA")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_AuditaNombresDeCamposCambiados(t *testing.T) {
	uc := newTaskUC(t, kanbandomain.WIPLimits{})

	task := crear(t, uc, "Revisar precios")
	title := "Revisar precios de temporada"
	priority := entity.TaskPriorityAlta
	updated, err := uc.Update(task.ID, dto.UpdateTaskRequest{Title: &title, Priority: &priority})
	require.NoError(t, err)

	assert.Equal(t, title, updated.Title)
	require.Len(t, updated.History, 2)
	last := updated.History[1]
	assert.Equal(t, "editada", last.Action)
	assert.ElementsMatch(t, []string{"title", "priority"}, last.ChangedFields,
		"se registran nombres de campos, no valores")
}

func TestDelete_Incondicional(t *testing.T) {
	uc := newTaskUC(t, kanbandomain.WIPLimits{})

	task := crear(t, uc, "Tarea desechable")
	require.NoError(t, uc.Delete(task.ID))

	_, err := uc.Get(task.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(task.ID), domain.ErrNotFound)
}

func TestList_CalculaSalud(t *testing.T) {
	uc := newTaskUC(t, kanbandomain.WIPLimits{})

	vencida := time.Now().Add(-24 * time.Hour)
	_, err := uc.Create(dto.CreateTaskRequest{
		Title:        "Declaración de IVA",
		Category:     "fiscal",
		DueDate:      &vencida,
		Dependencies: []string{"otra-tarea"},
	})
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].Health.Overdue)
	assert.True(t, list[0].Health.HasDependencies)
	assert.False(t, list[0].Health.Stuck, "recién creada, no estancada")
}
