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

var _ = Describe("ProductService", func() {
	var (
		ctx context.Context
		e   *env
		pen *entities.Product
	)

	names := func() []string {
		products, err := e.products.ListProducts(ctx)
		Expect(err).NotTo(HaveOccurred())
		out := make([]string, 0, len(products))
		for _, p := range products {
			out = append(out, p.Name)
		}
		return out
	}

	BeforeEach(func() {
		ctx = context.Background()
		e = newEnv()

		var err error
		pen, err = e.products.CreateProduct(ctx, services.CreateProductInput{Name: "Pen", Description: "Blue", Price: decimal.NewFromInt(5)})
		Expect(err).NotTo(HaveOccurred())
		_, err = e.products.CreateProduct(ctx, services.CreateProductInput{Name: "Book", Description: "Novel", Price: decimal.NewFromInt(30)})
		Expect(err).NotTo(HaveOccurred())
	})

	It("lista por nome", func() {
		Expect(names()).To(Equal([]string{"Book", "Pen"}))
	})

	It("soft delete esconde da listagem e restore devolve", func() {
		deleted, err := e.products.DeleteProduct(ctx, pen.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(deleted.IsDeleted).To(BeTrue())
		Expect(names()).To(Equal([]string{"Book"}))

		shown, err := e.products.GetProduct(ctx, pen.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(shown.IsDeleted).To(BeTrue())

		restored, err := e.products.RestoreProduct(ctx, pen.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(restored.IsDeleted).To(BeFalse())
		Expect(names()).To(Equal([]string{"Book", "Pen"}))
	})

	DescribeTable("rejeita preço não positivo",
		func(price decimal.Decimal) {
			_, err := e.products.CreateProduct(ctx, services.CreateProductInput{Name: "X", Description: "Y", Price: price})
			Expect(err).To(MatchError(domainerrors.ErrInvalidPrice))

			_, err = e.products.UpdateProduct(ctx, pen.ID, services.UpdateProductInput{Price: &price})
			Expect(err).To(MatchError(domainerrors.ErrInvalidPrice))
		},
		Entry("zero", decimal.Zero),
		Entry("negativo", decimal.NewFromInt(-1)),
	)

	It("atualiza só os campos enviados", func() {
		updated, err := e.products.UpdateProduct(ctx, pen.ID, services.UpdateProductInput{Price: ptr(decimal.RequireFromString("7.50"))})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Name).To(Equal("Pen"))
		Expect(updated.Price.Equal(decimal.RequireFromString("7.5"))).To(BeTrue())
	})

	It("retorna não encontrado", func() {
		_, err := e.products.GetProduct(ctx, 999)
		Expect(err).To(MatchError(domainerrors.ErrProductNotFound))
		_, err = e.products.RestoreProduct(ctx, 999)
		Expect(err).To(MatchError(domainerrors.ErrProductNotFound))
	})
})
