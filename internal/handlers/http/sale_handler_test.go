package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type saleBody struct {
	ID         uint    `json:"id"`
	ClientID   uint    `json:"clientId"`
	ProductID  uint    `json:"productId"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
}

func TestSaleHandler(t *testing.T) {
	api := newTestAPI(t).authenticated()
	clientID := api.create("/clients", map[string]any{"name": "Bob", "cpf": "12345678901"})
	productID := api.create("/products", map[string]any{"name": "Pen", "description": "Blue", "price": 10})

	w := api.do(http.MethodPost, "/sales", map[string]any{"clientId": clientID, "productId": productID, "quantity": 3})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var receipt struct {
		Message string `json:"message"`
		Data    struct {
			Sale        saleBody `json:"sale"`
			ClientName  string   `json:"clientName"`
			ProductName string   `json:"productName"`
		} `json:"data"`
	}
	decode(t, w, &receipt)
	assert.Equal(t, "Sale registered successfully!", receipt.Message)
	assert.Equal(t, "Bob", receipt.Data.ClientName)
	assert.Equal(t, "Pen", receipt.Data.ProductName)
	assert.Equal(t, 10.0, receipt.Data.Sale.UnitPrice)
	assert.Equal(t, 30.0, receipt.Data.Sale.TotalPrice)
	saleID := receipt.Data.Sale.ID

	t.Run("preço congelado após alterar o produto", func(t *testing.T) {
		w := api.do(http.MethodPatch, path("/products/%d", productID), map[string]any{"price": 20})
		require.Equal(t, http.StatusOK, w.Code)

		w = api.do(http.MethodGet, path("/sales/%d", saleID), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data saleBody `json:"data"`
		}
		decode(t, w, &resp)
		assert.Equal(t, 10.0, resp.Data.UnitPrice)
		assert.Equal(t, 30.0, resp.Data.TotalPrice)
	})

	t.Run("mesmo cliente e produto retorna 409", func(t *testing.T) {
		w := api.do(http.MethodPost, "/sales", map[string]any{"clientId": clientID, "productId": productID, "quantity": 1})
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "http://api.test/problems/conflict", decodeProblem(t, w).Type)
	})

	t.Run("lista vendas", func(t *testing.T) {
		w := api.do(http.MethodGet, "/sales", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []saleBody `json:"data"`
		}
		decode(t, w, &resp)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, saleID, resp.Data[0].ID)
	})

	notFound := []struct {
		name string
		body map[string]any
	}{
		{"cliente inexistente", map[string]any{"clientId": 999, "productId": productID, "quantity": 1}},
		{"produto inexistente", map[string]any{"clientId": clientID, "productId": 999, "quantity": 1}},
	}
	for _, tt := range notFound {
		t.Run(tt.name+" retorna 404", func(t *testing.T) {
			w := api.do(http.MethodPost, "/sales", tt.body)
			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}

	t.Run("produto com soft delete ainda pode ser vendido", func(t *testing.T) {
		otherID := api.create("/products", map[string]any{"name": "Ink", "description": "Black", "price": 3})
		require.Equal(t, http.StatusOK, api.do(http.MethodDelete, path("/products/%d", otherID), nil).Code)

		api.createSale(clientID, otherID, 1)
	})

	invalid := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"quantidade zero", map[string]any{"clientId": clientID, "productId": productID, "quantity": 0}, "quantity"},
		{"quantidade negativa", map[string]any{"clientId": clientID, "productId": productID, "quantity": -1}, "quantity"},
		{"quantidade texto", map[string]any{"clientId": clientID, "productId": productID, "quantity": "3"}, "quantity"},
		{"sem cliente", map[string]any{"productId": productID, "quantity": 1}, "clientId"},
	}
	for _, tt := range invalid {
		t.Run(tt.name+" retorna 400", func(t *testing.T) {
			w := api.do(http.MethodPost, "/sales", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			p := decodeProblem(t, w)
			require.NotEmpty(t, p.Errors)
			assert.Equal(t, tt.field, p.Errors[0].Field)
		})
	}

	t.Run("venda inexistente retorna 404", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/sales/999", nil).Code)
	})
}
