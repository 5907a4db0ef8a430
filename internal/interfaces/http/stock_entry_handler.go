package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pdv-estoque/internal/application/dto"
	appledger "github.com/tu-usuario/pdv-estoque/internal/application/ledger"
	"github.com/tu-usuario/pdv-estoque/internal/application/usecase"
)

// StockEntryHandler maneja las peticiones HTTP para entradas de stock
// (protegido). Las escrituras pasan por el motor de stock.
type StockEntryHandler struct {
	engine *appledger.StockEntryUseCase
	query  *usecase.StockEntryQueryUseCase
}

// NewStockEntryHandler construye el handler.
func NewStockEntryHandler(engine *appledger.StockEntryUseCase, query *usecase.StockEntryQueryUseCase) *StockEntryHandler {
	return &StockEntryHandler{engine: engine, query: query}
}

// Create godoc
// @Summary      Registrar entrada de stock
// @Tags         stock-entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockEntryRequest  true  "Producto y cantidad"
// @Success      201   {object}  dto.StockEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-entries [post]
func (h *StockEntryHandler) Create(c *fiber.Ctx) error {
	var in dto.StockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.engine.CreateStockEntry(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener entrada por ID
// @Tags         stock-entries
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la entrada"
// @Success      200  {object}  dto.StockEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-entries/{id} [get]
func (h *StockEntryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.query.GetByID(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar entradas de stock
// @Tags         stock-entries
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Búsqueda por código o descripción del producto"
// @Param        page      query  int     false  "Página"            default(1)
// @Param        per_page  query  int     false  "Filas por página"  default(5)
// @Success      200       {object}  dto.StockEntryListResponse
// @Router       /api/stock-entries [get]
func (h *StockEntryHandler) List(c *fiber.Ctx) error {
	out, err := h.query.List(GetUserID(c), parseListQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar entrada de stock
// @Description  Ajusta el stock por la diferencia si el producto es el mismo; si
// @Description  cambia el producto, revierte sobre el viejo y aplica sobre el nuevo.
// @Tags         stock-entries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la entrada"
// @Param        body  body  dto.StockEntryRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.StockEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-entries/{id} [put]
func (h *StockEntryHandler) Update(c *fiber.Ctx) error {
	var in dto.StockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.engine.UpdateStockEntry(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar entrada de stock
// @Description  Deshace la entrada: resta su cantidad del stock y borra el movimiento.
// @Tags         stock-entries
// @Security     Bearer
// @Param        id  path  string  true  "ID de la entrada"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-entries/{id} [delete]
func (h *StockEntryHandler) Delete(c *fiber.Ctx) error {
	if err := h.engine.DeleteStockEntry(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
