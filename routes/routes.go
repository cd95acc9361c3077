package routes

import (
	"net/http"

	"github.com/Dosada05/tournament-standings/handlers"
	"github.com/Dosada05/tournament-standings/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/tournament-standings/docs"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Team       *handlers.TeamHandler
	Tournament *handlers.TournamentHandler
	Group      *handlers.GroupHandler
	Match      *handlers.MatchHandler
	Standings  *handlers.StandingsHandler
	WebSocket  *handlers.WebSocketHandler
}

// SetupRoutes mounts the API on router. Reads are public; every mutating
// route requires an admin bearer token.
func SetupRoutes(router chi.Router, h Handlers, jwtSecret string, allowedOrigins []string) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticate(jwtSecret)

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Post("/auth/login", h.Auth.Login)

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", h.Team.ListTeams)
		r.Get("/{teamID}", h.Team.GetTeamByID)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Post("/", h.Team.CreateTeam)
			r.Patch("/{teamID}", h.Team.UpdateTeam)
			r.Delete("/{teamID}", h.Team.DeleteTeam)
			r.Post("/{teamID}/logo", h.Team.UploadTeamLogo)
		})
	})

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/", h.Tournament.ListTournaments)
		r.With(authenticate).Post("/", h.Tournament.CreateTournament)

		r.Route("/{tournamentID}", func(r chi.Router) {
			r.Get("/", h.Tournament.GetTournamentByID)
			r.Get("/standings", h.Standings.GetStandings)

			r.Get("/groups", h.Group.ListGroups)
			r.Get("/groups/{groupID}", h.Group.GetGroup)

			r.Get("/matches", h.Match.ListMatches)
			r.Get("/matches/{matchID}", h.Match.GetMatch)

			r.Group(func(r chi.Router) {
				r.Use(authenticate)
				r.Patch("/", h.Tournament.UpdateTournament)
				r.Delete("/", h.Tournament.DeleteTournament)

				r.Post("/groups", h.Group.CreateGroup)
				r.Post("/groups/{groupID}/teams", h.Group.AddTeam)
				r.Delete("/groups/{groupID}/teams/{teamID}", h.Group.RemoveTeam)

				r.Post("/matches/regular-season", h.Match.GenerateRegularSeason)
				r.Patch("/matches/{matchID}", h.Match.UpdateMatchScore)
			})
		})
	})

	router.Get("/ws/tournaments/{tournamentID}", h.WebSocket.ServeWs)
}
