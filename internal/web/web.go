package web

import (
	"net/http"
	"os"
	"time"

	"bitbucket.org/crgw/reservation-wizard/internal/tools/client/backoffice"
	"bitbucket.org/crgw/reservation-wizard/internal/tools/redisfactory"
	"bitbucket.org/crgw/reservation-wizard/internal/wizard"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func SetupRouter(log *zerolog.Logger, redisFactory *redisfactory.Factory) (*gin.Engine, error) {
	var (
		startTime       = time.Now()
		openApiLocation = os.Getenv("OPENAPI_LOCATION")
	)

	if openApiLocation == "" {
		openApiLocation = "./api/openapi.json"
	}

	openApiContent, _ := os.ReadFile(openApiLocation)

	router := gin.New()

	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "x-correlation-id")

	router.
		Use(StartRequest).
		Use(CorrelationId).
		Use(RegisterLogger(log)).
		Use(TraceLog).
		Use(PanicRecovery).
		Use(cors.New(corsConfig)).
		Use(OpenapiValidator())

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, string(openApiContent))
	})

	pprof.Register(router)

	backofficeClient, err := backoffice.NewClient(log)
	if err != nil {
		return nil, err
	}

	wizard.RegisterRoutes(
		router,
		wizard.NewStore(redisFactory.SessionsClient()),
		wizard.NewLookups(backofficeClient, redisFactory.LookupsCacheClient()),
		wizard.NewSubmitter(backofficeClient, log),
		backofficeClient,
	)

	return router, nil
}
