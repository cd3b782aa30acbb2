package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/rafabene/vendas-api/internal/domain/entities"
	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/vendas-api/internal/services"
)

var _ = Describe("ClientService", func() {
	var (
		ctx context.Context
		e   *env
		bob *entities.Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		e = newEnv()

		var err error
		bob, err = e.clients.CreateClient(ctx, services.CreateClientInput{Name: "Bob", CPF: "12345678901"})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("CreateClient", func() {
		It("atribui id", func() {
			Expect(bob.ID).NotTo(BeZero())
		})

		DescribeTable("rejeita cpf sem exatamente 11 caracteres",
			func(cpf string) {
				_, err := e.clients.CreateClient(ctx, services.CreateClientInput{Name: "X", CPF: cpf})
				Expect(err).To(MatchError(domainerrors.ErrInvalidCPF))
			},
			Entry("curto", "123"),
			Entry("longo", "123456789012"),
			Entry("vazio", ""),
			Entry("só espaços", "           "),
		)
	})

	Describe("UpdateClient", func() {
		It("altera só o nome quando o cpf não é enviado", func() {
			updated, err := e.clients.UpdateClient(ctx, bob.ID, services.UpdateClientInput{Name: ptr("Robert")})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Robert"))
			Expect(updated.CPF.String()).To(Equal("12345678901"))
		})

		It("retorna não encontrado", func() {
			_, err := e.clients.UpdateClient(ctx, 999, services.UpdateClientInput{Name: ptr("X")})
			Expect(err).To(MatchError(domainerrors.ErrClientNotFound))
		})
	})

	Describe("GetClient", func() {
		BeforeEach(func() {
			sales := postgres.NewSaleRepository(e.db)
			products := postgres.NewProductRepository(e.db)
			for i, createdAt := range []time.Time{
				time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
				time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
				time.Date(2024, 6, 20, 8, 0, 0, 0, time.UTC),
			} {
				product := &entities.Product{Name: string(rune('A' + i)), Description: "d", Price: decimal.NewFromInt(1)}
				Expect(products.Create(ctx, product)).To(Succeed())
				sale, err := entities.NewSale(bob, product, 1)
				Expect(err).NotTo(HaveOccurred())
				sale.CreatedAt = createdAt
				Expect(sales.Create(ctx, sale)).To(Succeed())
			}
		})

		It("carrega todas as vendas, mais recentes primeiro", func() {
			client, err := e.clients.GetClient(ctx, bob.ID, services.SalesFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(client.Sales).To(HaveLen(3))
			Expect(client.Sales[0].CreatedAt.Month()).To(Equal(time.June))
			Expect(client.Sales[2].CreatedAt.Month()).To(Equal(time.May))
		})

		It("filtra pelo mês e ano", func() {
			client, err := e.clients.GetClient(ctx, bob.ID, services.SalesFilter{Month: 6, Year: 2024})
			Expect(err).NotTo(HaveOccurred())
			Expect(client.Sales).To(HaveLen(2))
			Expect(client.Sales[0].CreatedAt.Day()).To(Equal(20))
		})

		DescribeTable("período inválido",
			func(filter services.SalesFilter) {
				_, err := e.clients.GetClient(ctx, bob.ID, filter)
				Expect(err).To(MatchError(domainerrors.ErrInvalidPeriod))
			},
			Entry("mês 13", services.SalesFilter{Month: 13, Year: 2024}),
			Entry("mês sem ano", services.SalesFilter{Month: 6}),
			Entry("ano sem mês", services.SalesFilter{Year: 2024}),
		)
	})

	Describe("DeleteClient", func() {
		It("remove endereços, telefones e vendas junto com o cliente", func() {
			_, err := e.address.CreateAddress(ctx, bob.ID, services.CreateAddressInput{
				Street: "Rua A", Number: "1", Neighborhood: "Centro", City: "Recife", State: "PE", PostalCode: "50000000",
			})
			Expect(err).NotTo(HaveOccurred())
			_, err = e.phones.CreatePhoneNumber(ctx, bob.ID, "81999990000")
			Expect(err).NotTo(HaveOccurred())
			product, err := e.products.CreateProduct(ctx, services.CreateProductInput{Name: "Pen", Description: "Blue", Price: decimal.NewFromInt(5)})
			Expect(err).NotTo(HaveOccurred())
			receipt, err := e.sales.CreateSale(ctx, services.CreateSaleInput{ClientID: bob.ID, ProductID: product.ID, Quantity: 1})
			Expect(err).NotTo(HaveOccurred())

			Expect(e.clients.DeleteClient(ctx, bob.ID)).To(Succeed())

			_, err = e.clients.GetClient(ctx, bob.ID, services.SalesFilter{})
			Expect(err).To(MatchError(domainerrors.ErrClientNotFound))
			_, err = e.sales.GetSale(ctx, receipt.Sale.ID)
			Expect(err).To(MatchError(domainerrors.ErrSaleNotFound))

			var remaining int64
			Expect(e.db.Model(&postgres.AddressModel{}).Count(&remaining).Error).To(Succeed())
			Expect(remaining).To(BeZero())
			Expect(e.db.Model(&postgres.PhoneNumberModel{}).Count(&remaining).Error).To(Succeed())
			Expect(remaining).To(BeZero())
		})

		It("retorna não encontrado", func() {
			Expect(e.clients.DeleteClient(ctx, 999)).To(MatchError(domainerrors.ErrClientNotFound))
		})
	})
})

var _ = Describe("AddressService e PhoneNumberService", func() {
	var (
		ctx context.Context
		e   *env
		bob *entities.Client
		ann *entities.Client
	)

	BeforeEach(func() {
		ctx = context.Background()
		e = newEnv()

		var err error
		bob, err = e.clients.CreateClient(ctx, services.CreateClientInput{Name: "Bob", CPF: "12345678901"})
		Expect(err).NotTo(HaveOccurred())
		ann, err = e.clients.CreateClient(ctx, services.CreateClientInput{Name: "Ann", CPF: "10987654321"})
		Expect(err).NotTo(HaveOccurred())
	})

	It("cadastra endereço com complemento opcional", func() {
		address, err := e.address.CreateAddress(ctx, bob.ID, services.CreateAddressInput{
			Street: "Rua A", Number: "1", Neighborhood: "Centro", City: "Recife", State: "PE", PostalCode: "50000000",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(address.ClientID).To(Equal(bob.ID))
		Expect(address.Complement).To(BeNil())
	})

	It("não cadastra endereço para cliente inexistente", func() {
		_, err := e.address.CreateAddress(ctx, 999, services.CreateAddressInput{Street: "Rua A"})
		Expect(err).To(MatchError(domainerrors.ErrClientNotFound))
	})

	It("atualiza e remove telefones do próprio cliente", func() {
		phone, err := e.phones.CreatePhoneNumber(ctx, bob.ID, "81999990000")
		Expect(err).NotTo(HaveOccurred())

		updated, err := e.phones.UpdatePhoneNumber(ctx, bob.ID, phone.ID, ptr("81988887777"))
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.PhoneNumber).To(Equal("81988887777"))

		Expect(e.phones.DeletePhoneNumber(ctx, bob.ID, phone.ID)).To(Succeed())
		Expect(e.phones.DeletePhoneNumber(ctx, bob.ID, phone.ID)).To(MatchError(domainerrors.ErrPhoneNumberNotFound))
	})

	It("não altera telefone de outro cliente", func() {
		phone, err := e.phones.CreatePhoneNumber(ctx, bob.ID, "81999990000")
		Expect(err).NotTo(HaveOccurred())

		_, err = e.phones.UpdatePhoneNumber(ctx, ann.ID, phone.ID, ptr("81988887777"))
		Expect(err).To(MatchError(domainerrors.ErrPhoneNumberNotFound))
		Expect(e.phones.DeletePhoneNumber(ctx, ann.ID, phone.ID)).To(MatchError(domainerrors.ErrPhoneNumberNotFound))
	})
})
