package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/vendas-api/internal/handlers/dto"
	"github.com/rafabene/vendas-api/internal/handlers/validation"
	"github.com/rafabene/vendas-api/internal/services"
)

// ClientHandler lida com clientes e seus endereços e telefones
type ClientHandler struct {
	clientService  *services.ClientService
	addressService *services.AddressService
	phoneService   *services.PhoneNumberService
	errorResponder
}

// NewClientHandler cria um novo ClientHandler
func NewClientHandler(
	clientService *services.ClientService,
	addressService *services.AddressService,
	phoneService *services.PhoneNumberService,
	responder errorResponder,
) *ClientHandler {
	return &ClientHandler{
		clientService:  clientService,
		addressService: addressService,
		phoneService:   phoneService,
		errorResponder: responder,
	}
}

// ListClients lista clientes por id
//
//	@Summary	Lista clientes
//	@Tags		clients
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.DataResponse{data=[]dto.ClientResponse}
//	@Router		/clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.clientService.ListClients(c.Request.Context())
	if err != nil {
		h.respond(c, err)
		return
	}

	respondOK(c, "success.list", dto.ToClientResponses(clients))
}

// CreateClient cadastra um cliente
//
//	@Summary	Cadastra um cliente
//	@Tags		clients
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		dto.CreateClientRequest	true	"Dados do cliente"
//	@Success	201		{object}	dto.DataResponse{data=dto.ClientResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), services.CreateClientInput{
		Name: req.Name,
		CPF:  req.CPF,
	})
	if err != nil {
		h.respond(c, err)
		return
	}

	respondCreated(c, "success.client.created", dto.ToClientResponse(client))
}

// GetClient detalha o cliente com endereços, telefones e vendas.
// month e year juntos filtram as vendas pelo mês (UTC).
//
//	@Summary	Detalha um cliente
//	@Tags		clients
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int	true	"ID do cliente"
//	@Param		month	query		int	false	"Mês (1-12)"
//	@Param		year	query		int	false	"Ano"
//	@Success	200		{object}	dto.DataResponse{data=dto.ClientDetailResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	filter, ok := salesFilter(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id, filter)
	if err != nil {
		h.respond(c, err)
		return
	}

	respondOK(c, "success.show", dto.ToClientDetailResponse(client))
}

// salesFilter só filtra quando month e year vêm juntos
func salesFilter(c *gin.Context) (services.SalesFilter, bool) {
	rawMonth, rawYear := c.Query("month"), c.Query("year")
	if rawMonth == "" || rawYear == "" {
		return services.SalesFilter{}, true
	}

	var fieldErrors []validation.FieldError
	month, err := strconv.Atoi(rawMonth)
	if err != nil || month < 1 || month > 12 {
		fieldErrors = append(fieldErrors, validation.FieldError{Field: "month", Tag: validation.TagMonth})
	}
	year, err := strconv.Atoi(rawYear)
	if err != nil || year < 1 {
		fieldErrors = append(fieldErrors, validation.FieldError{Field: "year", Tag: validation.TagYear})
	}

	if len(fieldErrors) > 0 {
		dto.AbortWithProblem(c, dto.ValidationErrorResponseI18n(c, fieldErrors))
		return services.SalesFilter{}, false
	}
	return services.SalesFilter{Month: month, Year: year}, true
}

// UpdateClient atualiza nome e/ou cpf (PATCH e PUT)
//
//	@Summary	Atualiza um cliente
//	@Tags		clients
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int							true	"ID do cliente"
//	@Param		request	body		dto.UpdateClientRequest	true	"Campos a alterar"
//	@Success	200		{object}	dto.DataResponse{data=dto.ClientResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/clients/{id} [patch]
//	@Router		/clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if !bindJSON(c, &req) {
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), id, services.UpdateClientInput{
		Name: req.Name,
		CPF:  req.CPF,
	})
	if err != nil {
		h.respond(c, err)
		return
	}

	respondOK(c, "success.client.updated", dto.ToClientResponse(client))
}

// DeleteClient remove o cliente com endereços, telefones e vendas
//
//	@Summary	Remove um cliente
//	@Tags		clients
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"ID do cliente"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		h.respond(c, err)
		return
	}

	respondMessage(c, "success.client.deleted")
}

// CreateAddress cadastra um endereço para o cliente
//
//	@Summary	Cadastra um endereço
//	@Tags		clients
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int							true	"ID do cliente"
//	@Param		request	body		dto.CreateAddressRequest	true	"Endereço"
//	@Success	201		{object}	dto.DataResponse{data=dto.AddressResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/clients/{id}/addresses [post]
func (h *ClientHandler) CreateAddress(c *gin.Context) {
	clientID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateAddressRequest
	if !bindJSON(c, &req) {
		return
	}

	address, err := h.addressService.CreateAddress(c.Request.Context(), clientID, services.CreateAddressInput{
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
	})
	if err != nil {
		h.respond(c, err)
		return
	}

	respondCreated(c, "success.address.created", dto.ToAddressResponse(address))
}

// CreatePhoneNumber cadastra um telefone para o cliente
//
//	@Summary	Cadastra um telefone
//	@Tags		clients
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int								true	"ID do cliente"
//	@Param		request	body		dto.CreatePhoneNumberRequest	true	"Telefone"
//	@Success	201		{object}	dto.DataResponse{data=dto.PhoneNumberResponse}
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/clients/{id}/phoneNumbers [post]
func (h *ClientHandler) CreatePhoneNumber(c *gin.Context) {
	clientID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CreatePhoneNumberRequest
	if !bindJSON(c, &req) {
		return
	}

	phone, err := h.phoneService.CreatePhoneNumber(c.Request.Context(), clientID, req.PhoneNumber)
	if err != nil {
		h.respond(c, err)
		return
	}

	respondCreated(c, "success.phone_number.created", dto.ToPhoneNumberResponse(phone))
}

// UpdatePhoneNumber altera um telefone do cliente (PATCH e PUT)
//
//	@Summary	Atualiza um telefone
//	@Tags		clients
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id				path		int								true	"ID do cliente"
//	@Param		phoneNumberId	path		int								true	"ID do telefone"
//	@Param		request			body		dto.UpdatePhoneNumberRequest	true	"Telefone"
//	@Success	200				{object}	dto.DataResponse{data=dto.PhoneNumberResponse}
//	@Failure	400				{object}	dto.ErrorResponse
//	@Failure	404				{object}	dto.ErrorResponse
//	@Router		/clients/{id}/phoneNumbers/{phoneNumberId} [patch]
//	@Router		/clients/{id}/phoneNumbers/{phoneNumberId} [put]
func (h *ClientHandler) UpdatePhoneNumber(c *gin.Context) {
	clientID, ok := pathID(c, "id")
	if !ok {
		return
	}
	phoneID, ok := pathID(c, "phoneNumberId")
	if !ok {
		return
	}

	var req dto.UpdatePhoneNumberRequest
	if !bindJSON(c, &req) {
		return
	}

	phone, err := h.phoneService.UpdatePhoneNumber(c.Request.Context(), clientID, phoneID, req.PhoneNumber)
	if err != nil {
		h.respond(c, err)
		return
	}

	respondOK(c, "success.phone_number.updated", dto.ToPhoneNumberResponse(phone))
}

// DeletePhoneNumber remove um telefone do cliente
//
//	@Summary	Remove um telefone
//	@Tags		clients
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id				path		int	true	"ID do cliente"
//	@Param		phoneNumberId	path		int	true	"ID do telefone"
//	@Success	200				{object}	dto.MessageResponse
//	@Failure	404				{object}	dto.ErrorResponse
//	@Router		/clients/{id}/phoneNumbers/{phoneNumberId} [delete]
func (h *ClientHandler) DeletePhoneNumber(c *gin.Context) {
	clientID, ok := pathID(c, "id")
	if !ok {
		return
	}
	phoneID, ok := pathID(c, "phoneNumberId")
	if !ok {
		return
	}

	if err := h.phoneService.DeletePhoneNumber(c.Request.Context(), clientID, phoneID); err != nil {
		h.respond(c, err)
		return
	}

	respondMessage(c, "success.phone_number.deleted")
}
