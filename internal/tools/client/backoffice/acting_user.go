package backoffice

import (
	"context"

	"bitbucket.org/crgw/reservation-wizard/internal/schema"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/go-querystring/query"
)

type actingUserClaims struct {
	UserID int    `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type actingUserQuery struct {
	Token string `url:"token"`
}

// GetActingUser resolves the identity behind a console token. The token's
// claims are decoded locally first so a malformed token fails without a
// network round trip; the backend stays authoritative for the user record.
func (c *Client) GetActingUser(ctx context.Context, token string) (*schema.ActingUser, *schema.BackendResponseError) {
	parsedToken, parseErr := jwt.ParseWithClaims(token, &actingUserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return nil, nil
	})

	if parsedToken == nil {
		msg := "could not parse acting-user token"
		if parseErr != nil {
			msg = parseErr.Error()
		}

		e := schema.NewBackendError(msg)
		return nil, &e
	}

	if _, ok := parsedToken.Claims.(*actingUserClaims); !ok {
		e := schema.NewBackendError("could not parse acting-user token claims")
		return nil, &e
	}

	values, _ := query.Values(actingUserQuery{Token: token})

	user := schema.ActingUser{}
	if err := c.get(ctx, schema.ResolveActingUser, c.baseURL+"/auth/user?"+values.Encode(), &user); err != nil {
		return nil, err
	}

	return &user, nil
}
