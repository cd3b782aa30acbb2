package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/vendas-api/internal/domain/entities"
	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/services"
)

func ptr[T any](v T) *T { return &v }

var _ = Describe("UserService", func() {
	var (
		ctx   context.Context
		e     *env
		alice *entities.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		e = newEnv()

		var err error
		alice, err = e.auth.Register(ctx, services.RegisterInput{Username: "alice", Email: "alice@x.com", Password: "pw123"})
		Expect(err).NotTo(HaveOccurred())
		_, err = e.auth.Register(ctx, services.RegisterInput{Username: "carol", Email: "carol@x.com", Password: "pw123"})
		Expect(err).NotTo(HaveOccurred())
	})

	It("lista usuários por id", func() {
		users, err := e.users.ListUsers(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(users).To(HaveLen(2))
		Expect(users[0].Username).To(Equal("alice"))
	})

	It("atualiza apenas os campos informados e refaz o hash da senha", func() {
		updated, err := e.users.UpdateUser(ctx, alice.ID, services.UpdateUserInput{Password: ptr("new-secret")})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Username).To(Equal("alice"))
		Expect(updated.PasswordHash).NotTo(Equal("new-secret"))

		_, _, err = e.auth.Login(ctx, "alice@x.com", "new-secret")
		Expect(err).NotTo(HaveOccurred())
	})

	It("não permite trocar para o email de outro usuário", func() {
		_, err := e.users.UpdateUser(ctx, alice.ID, services.UpdateUserInput{Email: ptr("carol@x.com")})
		Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyExists))
	})

	It("permite manter o próprio email", func() {
		_, err := e.users.UpdateUser(ctx, alice.ID, services.UpdateUserInput{Email: ptr("ALICE@x.com")})
		Expect(err).NotTo(HaveOccurred())
	})

	It("retorna não encontrado para id inexistente", func() {
		_, err := e.users.GetUser(ctx, 999)
		Expect(err).To(MatchError(domainerrors.ErrUserNotFound))

		Expect(e.users.DeleteUser(ctx, 999)).To(MatchError(domainerrors.ErrUserNotFound))
	})
})
