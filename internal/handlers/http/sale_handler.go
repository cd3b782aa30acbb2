package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/vendas-api/internal/handlers/dto"
	"github.com/rafabene/vendas-api/internal/services"
)

// SaleHandler registra e consulta vendas
type SaleHandler struct {
	saleService *services.SaleService
	errorResponder
}

// NewSaleHandler cria um novo SaleHandler
func NewSaleHandler(saleService *services.SaleService, responder errorResponder) *SaleHandler {
	return &SaleHandler{saleService: saleService, errorResponder: responder}
}

// ListSales lista vendas por id
//
//	@Summary	Lista vendas
//	@Tags		sales
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DataResponse{data=[]dto.SaleResponse}
//	@Router		/sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	sales, err := h.saleService.ListSales(c.Request.Context())
	if err != nil {
		h.respond(c, err)
		return
	}

	respondOK(c, "success.list", dto.ToSaleResponses(sales))
}

// CreateSale registra uma venda com o preço atual do produto
//
//	@Summary	Registra uma venda
//	@Tags		sales
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreateSaleRequest	true	"Venda"
//	@Success	201		{object}	dto.DataResponse{data=dto.SaleReceiptResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req dto.CreateSaleRequest
	if !bindJSON(c, &req) {
		return
	}

	receipt, err := h.saleService.CreateSale(c.Request.Context(), services.CreateSaleInput{
		ClientID:  req.ClientID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.respond(c, err)
		return
	}

	respondCreated(c, "success.sale.created", dto.SaleReceiptResponse{
		Sale:        dto.ToSaleResponse(receipt.Sale),
		ClientName:  receipt.ClientName,
		ProductName: receipt.ProductName,
	})
}

// GetSale busca uma venda
//
//	@Summary	Busca uma venda
//	@Tags		sales
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ID da venda"
//	@Success	200	{object}	dto.DataResponse{data=dto.SaleResponse}
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		h.respond(c, err)
		return
	}

	respondOK(c, "success.show", dto.ToSaleResponse(sale))
}
