package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		ctx context.Context
		e   *env
	)

	BeforeEach(func() {
		ctx = context.Background()
		e = newEnv()
	})

	Describe("Register", func() {
		It("cria o usuário com a senha em hash", func() {
			user, err := e.auth.Register(ctx, services.RegisterInput{
				Username: "alice", Email: "Alice@X.com", Password: "pw123",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeZero())
			Expect(user.Email.String()).To(Equal("alice@x.com"))
			Expect(user.PasswordHash).NotTo(Equal("pw123"))
		})

		It("rejeita email já cadastrado", func() {
			input := services.RegisterInput{Username: "alice", Email: "alice@x.com", Password: "pw123"}
			_, err := e.auth.Register(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			_, err = e.auth.Register(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyExists))
		})

		It("rejeita email inválido", func() {
			_, err := e.auth.Register(ctx, services.RegisterInput{Username: "a", Email: "nope", Password: "x"})
			Expect(err).To(MatchError(domainerrors.ErrInvalidEmail))
		})
	})

	Describe("Login e Authenticate", func() {
		BeforeEach(func() {
			_, err := e.auth.Register(ctx, services.RegisterInput{
				Username: "alice", Email: "alice@x.com", Password: "pw123",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("emite um token que resolve para o usuário", func() {
			user, token, err := e.auth.Login(ctx, "alice@x.com", "pw123")
			Expect(err).NotTo(HaveOccurred())
			Expect(token).NotTo(BeEmpty())

			resolved, err := e.auth.Authenticate(ctx, token)
			Expect(err).NotTo(HaveOccurred())
			Expect(resolved.ID).To(Equal(user.ID))
		})

		DescribeTable("credenciais inválidas",
			func(email, password string) {
				_, _, err := e.auth.Login(ctx, email, password)
				Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
			},
			Entry("senha errada", "alice@x.com", "wrong"),
			Entry("email desconhecido", "bob@x.com", "pw123"),
			Entry("email malformado", "alice", "pw123"),
		)

		It("rejeita token inválido", func() {
			_, err := e.auth.Authenticate(ctx, "not-a-token")
			Expect(err).To(MatchError(domainerrors.ErrInvalidToken))
		})

		It("retorna usuário não encontrado quando o dono do token foi removido", func() {
			user, token, err := e.auth.Login(ctx, "alice@x.com", "pw123")
			Expect(err).NotTo(HaveOccurred())
			Expect(e.users.DeleteUser(ctx, user.ID)).To(Succeed())

			_, err = e.auth.Authenticate(ctx, token)
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})
})
