// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides token management for the operator endpoints.
//
// # Architecture
//
// The API process only holds the RSA public key and can verify tokens; the
// private key stays with whoever runs `iso639 token`. Both sides share
// [TokenService], loaded with one key or the other.
package sec

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSigningKey is returned when a verify-only service is asked to sign.
var ErrNoSigningKey = errors.New("sec: token service has no private key")

// AuthClaims represents the payload embedded inside an operator token.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Role is abbreviated to keep the JWT payload small.
	Role string `json:"rol"`
}

// TokenService handles generation and verification of JWT tokens using RS256.
type TokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
}

// NewTokenService creates a TokenService from already parsed keys.
// Either key may be nil; the matching operation then fails.
func NewTokenService(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, issuer string) *TokenService {
	if publicKey == nil && privateKey != nil {
		publicKey = &privateKey.PublicKey
	}
	return &TokenService{privateKey: privateKey, publicKey: publicKey, issuer: issuer}
}

// LoadVerifier reads a PEM public key and returns a verify-only service.
func LoadVerifier(publicKeyPath, issuer string) (*TokenService, error) {
	data, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read public key from %s: %w", publicKeyPath, err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(data)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse public key: %w", err)
	}

	return NewTokenService(nil, publicKey, issuer), nil
}

// LoadSigner reads a PEM private key and returns a service that can both sign
// and verify.
func LoadSigner(privateKeyPath, issuer string) (*TokenService, error) {
	data, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read private key from %s: %w", privateKeyPath, err)
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(data)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse private key: %w", err)
	}

	return NewTokenService(privateKey, nil, issuer), nil
}

// GenerateAccessToken creates a signed token for subject with the given role.
func (service *TokenService) GenerateAccessToken(subject string, role UserRole, timeToLive time.Duration) (string, error) {
	if service.privateKey == nil {
		return "", ErrNoSigningKey
	}

	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		Role: string(role),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signedToken, err := token.SignedString(service.privateKey)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature, expiry and issuer of a JWT string.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.publicKey, nil
	}, jwt.WithIssuer(service.issuer), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
