package utils

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/jobmanagement/job-service/config"
	"github.com/jobmanagement/job-service/pkg/errs"
)

type TokenClaims struct {
	UserID int64
	Email  string
	Role   string
}

func CreateJWTToken(userID int64, email string, role string, conf config.JWTConfig) (string, error) {
	claims := jwt.MapClaims{}
	claims["userID"] = userID
	claims["email"] = email
	claims["role"] = role
	claims["jti"] = uuid.New().String()
	claims["iss"] = conf.Issuer
	claims["aud"] = conf.Audience
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(time.Duration(conf.ExpiryMinutes) * time.Minute).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(conf.Secret))
}

// ParseJWTToken verifies the signature, expiry, issuer, and audience of a
// bearer token and returns the identity claims it carries. Expiry is checked
// with zero clock skew.
func ParseJWTToken(tokenString string, conf config.JWTConfig) (TokenClaims, error) {
	res := TokenClaims{}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrNotLoggedIn
		}
		return []byte(conf.Secret), nil
	})
	if err != nil || !token.Valid {
		return res, errs.ErrNotLoggedIn
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return res, errs.ErrNotLoggedIn
	}

	if !claims.VerifyIssuer(conf.Issuer, true) || !claims.VerifyAudience(conf.Audience, true) {
		return res, errs.ErrNotLoggedIn
	}

	res.UserID, ok = numericClaim(claims["userID"])
	if !ok || res.UserID <= 0 {
		return TokenClaims{}, errs.ErrNotLoggedIn
	}
	res.Email, _ = claims["email"].(string)
	res.Role, ok = claims["role"].(string)
	if !ok {
		return TokenClaims{}, errs.ErrNotLoggedIn
	}

	return res, nil
}

// numericClaim tolerates both float64 (JSON round trip) and int64 claims.
func numericClaim(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		return parsed, err == nil
	}
	return 0, false
}
