package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/appdotbuilder/simple-todo-app-99e5/internal/domain/model"
	"github.com/appdotbuilder/simple-todo-app-99e5/internal/domain/usecase/todo"
	"github.com/appdotbuilder/simple-todo-app-99e5/pkg/log"
	"github.com/appdotbuilder/simple-todo-app-99e5/pkg/msg"
)

// Procedure names exposed on the RPC endpoint.
const (
	ProcedureCreateTodo           = "createTodo"
	ProcedureGetTodos             = "getTodos"
	ProcedureUpdateTodoCompletion = "updateTodoCompletion"
	ProcedureDeleteTodo           = "deleteTodo"
)

type RPCController struct {
	api     *echo.Group
	useCase todo.UseCase
}

func NewRPCController(api *echo.Group, useCase todo.UseCase) *RPCController {
	return &RPCController{api: api, useCase: useCase}
}

// InitRPCRoutes initializes the single RPC endpoint. All four
// procedures are dispatched by name from the same route.
func (controller *RPCController) InitRPCRoutes() {
	controller.api.POST("/rpc/:procedure", controller.Call)
	controller.api.GET("/rpc/:procedure", controller.Call)
}

// Call godoc
// @Summary Invoke a named todo procedure
// @Description Dispatches to createTodo, getTodos, updateTodoCompletion or deleteTodo based on the path parameter
// @Tags rpc
// @Accept json
// @Produce json
// @Param procedure path string true "Procedure name" Enums(createTodo, getTodos, updateTodoCompletion, deleteTodo)
// @Param input body object false "Procedure input"
// @Success 200 {object} entity.Todo "Procedure result"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Unknown procedure or missing todo"
// @Failure 500 {object} map[string]string "Storage error"
// @Router /rpc/{procedure} [post]
func (controller *RPCController) Call(c echo.Context) error {
	procedure := c.Param("procedure")

	switch procedure {
	case ProcedureCreateTodo:
		return controller.createTodo(c)
	case ProcedureGetTodos:
		return controller.getTodos(c)
	case ProcedureUpdateTodoCompletion:
		return controller.updateTodoCompletion(c)
	case ProcedureDeleteTodo:
		return controller.deleteTodo(c)
	default:
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": msg.GetMessage("rpc.error.unknown-procedure", procedure),
		})
	}
}

func (controller *RPCController) createTodo(c echo.Context) error {
	var dto model.CreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg.GetMessage("rpc.error.invalid-body"),
		})
	}

	created, err := controller.useCase.CreateTodo(dto)
	if err != nil {
		return controller.fail(c, err)
	}
	return c.JSON(http.StatusOK, created)
}

func (controller *RPCController) getTodos(c echo.Context) error {
	todos, err := controller.useCase.GetTodos()
	if err != nil {
		return controller.fail(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

func (controller *RPCController) updateTodoCompletion(c echo.Context) error {
	var dto model.UpdateTodoCompletionDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg.GetMessage("rpc.error.invalid-body"),
		})
	}

	updated, err := controller.useCase.UpdateTodoCompletion(dto)
	if err != nil {
		return controller.fail(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (controller *RPCController) deleteTodo(c echo.Context) error {
	var dto model.DeleteTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": msg.GetMessage("rpc.error.invalid-body"),
		})
	}

	result, err := controller.useCase.DeleteTodo(dto)
	if err != nil {
		return controller.fail(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// fail maps domain errors onto HTTP statuses. Storage errors are
// logged here, at the boundary, and propagated unchanged.
func (controller *RPCController) fail(c echo.Context, err error) error {
	var validationErr *todo.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	var notFoundErr *todo.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	log.Error("storage error", zap.String("procedure", c.Param("procedure")), zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
