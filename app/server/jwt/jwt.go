package jwt

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"time"
)

type JWT struct {
	key []byte
}

// User 令牌中携带的用户信息
type User struct {
	ID       string
	Username string
	Role     string
	TokenID  string    // jti ，吊销时使用
	Expires  time.Time // 过期时间
}

type claims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key)}, nil
}

func (j *JWT) ParseUser(tokenString string) (*User, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	// 只接受 HS256 ，并且必须带有过期时间
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}
	if !token.Valid || c.ID == "" {
		return nil, fmt.Errorf("invalid token")
	}

	return &User{
		ID:       c.ID,
		Username: c.Username,
		Role:     c.Role,
		TokenID:  c.RegisteredClaims.ID,
		Expires:  c.ExpiresAt.Time,
	}, nil
}

// SignToken 签发令牌，user.TokenID 为空时自动生成
func (j *JWT) SignToken(user *User) (string, error) {
	if user.TokenID == "" {
		user.TokenID = uuid.NewString()
	}

	// 创建声明
	c := claims{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        user.TokenID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(user.Expires),
		},
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)

	// 签名并返回
	return token.SignedString(j.key)
}
