package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainerrors "github.com/rafabene/vendas-api/internal/domain/errors"
	"github.com/rafabene/vendas-api/internal/domain/ports"
)

// Claims é o payload dos tokens de sessão: {id: userId} mais os claims registrados
type Claims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

// JWTService implementa ports.TokenService com HS256
type JWTService struct {
	secret []byte
	expiry time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTService cria um JWTService. O segredo é lido uma única vez na inicialização.
func NewJWTService(secret string, expiry time.Duration, issuer string) ports.TokenService {
	return &JWTService{
		secret: []byte(secret),
		expiry: expiry,
		issuer: issuer,
		now:    time.Now,
	}
}

// Issue assina um token para o usuário com expiração now+expiry
func (s *JWTService) Issue(userID uint) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("jwt: empty secret")
	}

	now := s.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse valida assinatura, algoritmo e expiração e devolve o id do usuário.
// Qualquer falha vira ErrInvalidToken.
func (s *JWTService) Parse(tokenString string) (uint, error) {
	if tokenString == "" || len(s.secret) == 0 {
		return 0, domainerrors.ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, domainerrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 {
		return 0, domainerrors.ErrInvalidToken
	}

	return claims.UserID, nil
}
