package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/rafabene/vendas-api/internal/domain/entities"
	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/services"
)

var _ = Describe("SaleService", func() {
	var (
		ctx context.Context
		e   *env
		bob *entities.Client
		pen *entities.Product
	)

	BeforeEach(func() {
		ctx = context.Background()
		e = newEnv()

		var err error
		bob, err = e.clients.CreateClient(ctx, services.CreateClientInput{Name: "Bob", CPF: "12345678901"})
		Expect(err).NotTo(HaveOccurred())
		pen, err = e.products.CreateProduct(ctx, services.CreateProductInput{Name: "Pen", Description: "Blue", Price: decimal.NewFromInt(10)})
		Expect(err).NotTo(HaveOccurred())
	})

	It("congela o preço unitário e calcula o total", func() {
		receipt, err := e.sales.CreateSale(ctx, services.CreateSaleInput{ClientID: bob.ID, ProductID: pen.ID, Quantity: 3})
		Expect(err).NotTo(HaveOccurred())
		Expect(receipt.ClientName).To(Equal("Bob"))
		Expect(receipt.ProductName).To(Equal("Pen"))
		Expect(receipt.Sale.UnitPrice.Equal(decimal.NewFromInt(10))).To(BeTrue())
		Expect(receipt.Sale.TotalPrice.Equal(decimal.NewFromInt(30))).To(BeTrue())

		By("alterando o preço do produto depois da venda")
		_, err = e.products.UpdateProduct(ctx, pen.ID, services.UpdateProductInput{Price: ptr(decimal.NewFromInt(99))})
		Expect(err).NotTo(HaveOccurred())

		sale, err := e.sales.GetSale(ctx, receipt.Sale.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(sale.UnitPrice.Equal(decimal.NewFromInt(10))).To(BeTrue())
		Expect(sale.TotalPrice.Equal(decimal.NewFromInt(30))).To(BeTrue())
	})

	It("rejeita segunda venda do mesmo produto para o mesmo cliente", func() {
		_, err := e.sales.CreateSale(ctx, services.CreateSaleInput{ClientID: bob.ID, ProductID: pen.ID, Quantity: 1})
		Expect(err).NotTo(HaveOccurred())

		_, err = e.sales.CreateSale(ctx, services.CreateSaleInput{ClientID: bob.ID, ProductID: pen.ID, Quantity: 2})
		Expect(err).To(MatchError(domainerrors.ErrSaleAlreadyExists))

		sales, err := e.sales.ListSales(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(sales).To(HaveLen(1))
	})

	DescribeTable("referências e quantidade inválidas",
		func(input func() services.CreateSaleInput, expected error) {
			_, err := e.sales.CreateSale(ctx, input())
			Expect(err).To(MatchError(expected))
		},
		Entry("cliente inexistente", func() services.CreateSaleInput {
			return services.CreateSaleInput{ClientID: 999, ProductID: pen.ID, Quantity: 1}
		}, domainerrors.ErrClientNotFound),
		Entry("produto inexistente", func() services.CreateSaleInput {
			return services.CreateSaleInput{ClientID: bob.ID, ProductID: 999, Quantity: 1}
		}, domainerrors.ErrProductNotFound),
		Entry("quantidade zero", func() services.CreateSaleInput {
			return services.CreateSaleInput{ClientID: bob.ID, ProductID: pen.ID, Quantity: 0}
		}, domainerrors.ErrInvalidQuantity),
	)

	It("vende produto com soft delete pelo preço atual", func() {
		_, err := e.products.DeleteProduct(ctx, pen.ID)
		Expect(err).NotTo(HaveOccurred())

		receipt, err := e.sales.CreateSale(ctx, services.CreateSaleInput{ClientID: bob.ID, ProductID: pen.ID, Quantity: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(receipt.ProductName).To(Equal(pen.Name))
		Expect(receipt.Sale.UnitPrice.Equal(pen.Price)).To(BeTrue())
	})
})
