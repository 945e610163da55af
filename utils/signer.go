// file: utils/signer.go
package utils

import (
	"log"
	"strings"

	"FlagCore/config"

	"github.com/golang-jwt/jwt/v5"
)

// Link tokens authenticate a user through an out-of-band URL (e.g. an
// emailed link) without a session. They carry no expiry; they die with
// the signing secret instead.

const linkIssuer = "flagcore-link"

// SignLinkToken binds a user id into an HMAC-signed token.
func SignLinkToken(uid string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject: uid,
		Issuer:  linkIssuer,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.C.SigningSecret)
}

// VerifyLinkToken re-derives the user id from a link token.
func VerifyLinkToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return config.C.SigningSecret, nil
		},
		jwt.WithIssuer(linkIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", err
	}
	claims := token.Claims.(*jwt.RegisteredClaims)
	return claims.Subject, nil
}

// SignURL builds an absolute URL for path that authenticates user via
// a token query parameter.
func SignURL(uid, path string) (string, error) {
	token, err := SignLinkToken(uid)
	if err != nil {
		return "", err
	}

	origin := strings.TrimRight(config.C.Origin, "/")
	if origin == "" {
		log.Println("Warning: CTF_ORIGIN is not set, signed URL will be relative.")
	}

	path = strings.TrimLeft(path, "/")
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return origin + "/" + path + sep + "token=" + token, nil
}
