package web

import (
	"net/http"
	"os"

	"bitbucket.org/crgw/service-helpers/middleware"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/gin-gonic/gin"
)

// OpenapiValidator checks incoming requests against the service contract in
// api/openapi.json. Requests for routes outside the contract (status, pprof)
// pass through untouched. When the document cannot be loaded the validator
// degrades to a no-op.
func OpenapiValidator() gin.HandlerFunc {
	location := os.Getenv("OPENAPI_LOCATION")
	if location == "" {
		location = "./api/openapi.json"
	}

	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromFile(location)
	if err != nil {
		return func(c *gin.Context) {}
	}

	if err := doc.Validate(loader.Context); err != nil {
		return func(c *gin.Context) {}
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return func(c *gin.Context) {}
	}

	return func(c *gin.Context) {
		route, pathParams, err := router.FindRoute(c.Request)
		if err != nil {
			c.Next()
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
			},
		}

		if err := openapi3filter.ValidateRequest(c.Request.Context(), input); err != nil {
			middleware.HandleError(c, http.StatusBadRequest, err.Error(), err)
			c.Abort()
			return
		}

		c.Next()
	}
}
