package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/vendas-api/internal/handlers/dto"
	"github.com/rafabene/vendas-api/internal/services"
)

// ProductHandler lida com o catálogo de produtos
type ProductHandler struct {
	productService *services.ProductService
	errorResponder
}

// NewProductHandler cria um novo ProductHandler
func NewProductHandler(productService *services.ProductService, responder errorResponder) *ProductHandler {
	return &ProductHandler{productService: productService, errorResponder: responder}
}

// ListProducts lista produtos não deletados por nome
//
//	@Summary	Lista produtos
//	@Tags		products
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DataResponse{data=[]dto.ProductResponse}
//	@Router		/products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		h.respond(c, err)
		return
	}

	respondOK(c, "success.list", dto.ToProductResponses(products))
}

// CreateProduct cria um produto
//
//	@Summary	Cria um produto
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreateProductRequest	true	"Produto"
//	@Success	201		{object}	dto.DataResponse{data=dto.ProductResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), services.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
	})
	if err != nil {
		h.respond(c, err)
		return
	}

	respondCreated(c, "success.product.created", dto.ToProductResponse(product))
}

// GetProduct busca um produto, inclusive deletado
//
//	@Summary	Busca um produto
//	@Tags		products
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ID do produto"
//	@Success	200	{object}	dto.DataResponse{data=dto.ProductResponse}
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.respond(c, err)
		return
	}

	respondOK(c, "success.show", dto.ToProductResponse(product))
}

// UpdateProduct atualiza os campos enviados (PATCH e PUT)
//
//	@Summary	Atualiza um produto
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int							true	"ID do produto"
//	@Param		request	body		dto.UpdateProductRequest	true	"Campos a alterar"
//	@Success	200		{object}	dto.DataResponse{data=dto.ProductResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/products/{id} [patch]
//	@Router		/products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, services.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		h.respond(c, err)
		return
	}

	respondOK(c, "success.product.updated", dto.ToProductResponse(product))
}

// DeleteProduct faz soft delete
//
//	@Summary	Deleta um produto (soft delete)
//	@Tags		products
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ID do produto"
//	@Success	200	{object}	dto.DataResponse{data=dto.ProductResponse}
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		h.respond(c, err)
		return
	}

	respondOK(c, "success.product.deleted", dto.ToProductResponse(product))
}

// RestoreProduct desfaz o soft delete
//
//	@Summary	Restaura um produto
//	@Tags		products
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ID do produto"
//	@Success	200	{object}	dto.DataResponse{data=dto.ProductResponse}
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/products/{id}/restore [post]
func (h *ProductHandler) RestoreProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.RestoreProduct(c.Request.Context(), id)
	if err != nil {
		h.respond(c, err)
		return
	}

	respondOK(c, "success.product.restored", dto.ToProductResponse(product))
}
