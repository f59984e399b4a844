package wizard

import (
	"net/http"
	"strings"

	"bitbucket.org/crgw/reservation-wizard/internal/schema"
	"bitbucket.org/crgw/reservation-wizard/internal/tools/client/backoffice"
	"bitbucket.org/crgw/service-helpers/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const sessionKeyName = "wizardSession"

type statePayload struct {
	Session  *Session       `json:"session"`
	Validity []StepValidity `json:"validity"`
}

func state(session *Session) statePayload {
	return statePayload{
		Session:  session,
		Validity: session.Validity(),
	}
}

// loadSession resolves the :sessionId parameter into a live session. Expired
// and unknown sessions are indistinguishable; both answer 404.
func loadSession(store *Store) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, found := store.Find(ctx.Request.Context(), ctx.Params.ByName("sessionId"))
		if !found {
			middleware.HandleError(ctx, http.StatusNotFound, "Wizard session not found", nil)
			ctx.Abort()
			return
		}

		ctx.Set(sessionKeyName, session)
		ctx.Next()
	}
}

func sessionFrom(ctx *gin.Context) *Session {
	return ctx.MustGet(sessionKeyName).(*Session)
}

func RegisterRoutes(
	router *gin.Engine,
	store *Store,
	lookups *Lookups,
	submitter *Submitter,
	backofficeClient *backoffice.Client,
) {
	router.POST("/wizard", func(ctx *gin.Context) {
		token := strings.TrimPrefix(ctx.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			middleware.HandleError(ctx, http.StatusUnauthorized, "Missing console token", nil)
			return
		}

		user, userErr := backofficeClient.GetActingUser(ctx.Request.Context(), token)
		if userErr != nil {
			middleware.HandleError(ctx, http.StatusUnauthorized, userErr.Message, nil)
			return
		}

		session := NewSession(*user)
		if err := store.Save(ctx.Request.Context(), session); err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed storing wizard session", err)
			return
		}

		ctx.JSON(http.StatusCreated, state(session))
	})

	group := router.Group("/wizard/:sessionId", loadSession(store))

	group.GET("", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, state(sessionFrom(ctx)))
	})

	group.POST("/edit", func(ctx *gin.Context) {
		session := sessionFrom(ctx)

		params := schema.EditRequestParams{}
		if err := ctx.ShouldBindJSON(&params); err != nil {
			middleware.HandleError(ctx, http.StatusBadRequest, "Bad edit params", err)
			return
		}

		if params.Generation != nil && *params.Generation != session.LookupGeneration {
			middleware.HandleError(ctx, http.StatusConflict, "Edit built from a stale option list", nil)
			return
		}

		resolved := lookups.ResolveEdit(ctx.Request.Context(), session, params)

		if err := Apply(session, params, resolved); err != nil {
			middleware.HandleError(ctx, http.StatusBadRequest, err.Error(), err)
			return
		}

		if err := store.Save(ctx.Request.Context(), session); err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed storing wizard session", err)
			return
		}

		ctx.JSON(http.StatusOK, state(session))
	})

	group.POST("/next", func(ctx *gin.Context) {
		session := sessionFrom(ctx)

		if session.Step == schema.StepConfirmation {
			middleware.HandleError(ctx, http.StatusBadRequest, "Already on the confirmation step", nil)
			return
		}

		if !session.StepValid(session.Step) {
			middleware.HandleError(ctx, http.StatusBadRequest, ErrStepGate.Error(), ErrStepGate)
			return
		}

		session.Step++

		if err := store.Save(ctx.Request.Context(), session); err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed storing wizard session", err)
			return
		}

		ctx.JSON(http.StatusOK, state(session))
	})

	group.POST("/back", func(ctx *gin.Context) {
		session := sessionFrom(ctx)

		// Back from the first step leaves the wizard: the transient state is
		// torn down, same as expiry.
		if session.Step == schema.StepDestination {
			if err := store.Delete(ctx.Request.Context(), session.SessionID); err != nil {
				middleware.HandleError(ctx, http.StatusInternalServerError, "Failed deleting wizard session", err)
				return
			}

			ctx.JSON(http.StatusOK, gin.H{"exited": true})
			return
		}

		session.Step--

		if err := store.Save(ctx.Request.Context(), session); err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed storing wizard session", err)
			return
		}

		ctx.JSON(http.StatusOK, state(session))
	})

	group.POST("/submit", func(ctx *gin.Context) {
		session := sessionFrom(ctx)
		logger := ctx.MustGet("logger").(*zerolog.Logger)

		if session.Step != schema.StepConfirmation {
			middleware.HandleError(ctx, http.StatusBadRequest, ErrNotOnConfirmation.Error(), ErrNotOnConfirmation)
			return
		}

		for _, validity := range session.Validity() {
			if !validity.Valid {
				middleware.HandleError(ctx, http.StatusBadRequest, ErrStepGate.Error(), ErrStepGate)
				return
			}
		}

		locked, err := store.AcquireSubmitLock(ctx.Request.Context(), session.SessionID)
		if err != nil {
			middleware.HandleError(ctx, http.StatusInternalServerError, "Failed acquiring submission lock", err)
			return
		}

		if !locked {
			middleware.HandleError(ctx, http.StatusConflict, ErrSubmitInFlight.Error(), ErrSubmitInFlight)
			return
		}
		defer store.ReleaseSubmitLock(ctx.Request.Context(), session.SessionID)

		session.Submitting = true
		store.Save(ctx.Request.Context(), session)

		result := submitter.Submit(ctx.Request.Context(), session)

		session.Submitting = false
		session.Outcome = result.Outcome
		if result.FlightID != 0 {
			session.CreatedFlightID = result.FlightID
		}
		if result.AgencyID != 0 {
			session.CreatedAgencyID = result.AgencyID
		}
		if result.ReservationID != 0 {
			session.CreatedReservationID = result.ReservationID
		}

		if err := store.Save(ctx.Request.Context(), session); err != nil {
			logger.Error().Err(err).Msg("failed storing session after submission")
		}

		ctx.JSON(http.StatusOK, gin.H{
			"result":  result,
			"session": session,
		})
	})

	group.GET("/options/destinations", func(ctx *gin.Context) {
		session := sessionFrom(ctx)

		ctx.JSON(http.StatusOK, gin.H{
			"generation":   session.LookupGeneration,
			"destinations": lookups.Destinations(ctx.Request.Context()),
		})
	})

	group.GET("/options/packages", func(ctx *gin.Context) {
		session := sessionFrom(ctx)

		if session.Destination.CountryID == 0 || session.Destination.CityID == 0 {
			middleware.HandleError(ctx, http.StatusBadRequest, ErrNoCitySelected.Error(), ErrNoCitySelected)
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"generation": session.LookupGeneration,
			"packages": lookups.Packages(
				ctx.Request.Context(),
				session.Destination.CountryID,
				session.Destination.CityID,
			),
		})
	})

	group.GET("/options/agencies", func(ctx *gin.Context) {
		session := sessionFrom(ctx)

		ctx.JSON(http.StatusOK, gin.H{
			"generation": session.LookupGeneration,
			"agencies":   lookups.Agencies(ctx.Request.Context()),
		})
	})
}
