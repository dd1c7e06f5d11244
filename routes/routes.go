package routes

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"stagelink/artists"
	"stagelink/auth"
	"stagelink/booking"
	"stagelink/favorites"
	"stagelink/middleware"
	"stagelink/models"
	"stagelink/ratelim"
	"stagelink/reviews"
	"stagelink/users"
	"stagelink/utils"
)

// API bundles the handlers and middleware the route tables wire together.
type API struct {
	Auth      *auth.Handler
	Artists   *artists.Handler
	Users     *users.Handler
	Bookings  *booking.Handler
	Favorites *favorites.Handler
	Reviews   *reviews.Handler
	MW        *middleware.Auth
	Limiter   *ratelim.RateLimiter
	LoginLim  *ratelim.LoginLimiter
}

func RoutesWrapper(router *httprouter.Router, api *API) {
	AddAuthRoutes(router, api)
	AddArtistRoutes(router, api)
	AddUserRoutes(router, api)
	AddBookingRoutes(router, api)
	AddReviewRoutes(router, api)
}

func AddAuthRoutes(router *httprouter.Router, api *API) {
	rl := api.Limiter.Limit
	login := api.LoginLim.Limit

	router.POST("/api/auth/signup", rl(login(api.Auth.Signup)))
	router.POST("/api/auth/signin", rl(login(api.Auth.Signin)))
	router.GET("/api/auth/me", rl(api.MW.Authenticate(api.Auth.Me)))
	router.POST("/api/auth/refresh", rl(login(api.Auth.Refresh)))
	router.POST("/api/auth/logout", rl(api.MW.Authenticate(api.Auth.Logout)))
}

func AddArtistRoutes(router *httprouter.Router, api *API) {
	rl := api.Limiter.Limit

	router.GET("/api/artists", rl(api.Artists.GetArtists))
	router.GET("/api/artists/:id", rl(api.Artists.GetArtistByID))
	// httprouter cannot mix the static "categories" segment with ":id", so
	// the two-segment GETs share one dispatcher.
	router.GET("/api/artists/:id/:resource", rl(artistSubresource(api)))
	router.POST("/api/artists", rl(api.MW.Authenticate(api.Artists.CreateArtist)))
	router.PUT("/api/artists/:id", rl(api.MW.Authenticate(api.Artists.UpdateArtist)))
	router.DELETE("/api/artists/:id", rl(api.MW.Authenticate(api.Artists.DeleteArtist)))
}

func artistSubresource(api *API) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		switch {
		case ps.ByName("id") == "categories" && ps.ByName("resource") == "all":
			api.Artists.GetCategories(w, r, ps)
		case ps.ByName("resource") == "reviews":
			api.Reviews.GetArtistReviews(w, r, ps)
		default:
			utils.RespondWithError(w, http.StatusNotFound, "Not found")
		}
	}
}

func AddUserRoutes(router *httprouter.Router, api *API) {
	rl := api.Limiter.Limit
	authed := api.MW.Authenticate
	self := func(next httprouter.Handle) httprouter.Handle {
		return authed(middleware.RequireSelf("id", next))
	}

	router.GET("/api/users/:id", rl(api.Users.GetUser))
	router.PUT("/api/users/:id", rl(self(api.Users.UpdateUser)))
	router.DELETE("/api/users/:id", rl(self(api.Users.DeleteUser)))
	router.PUT("/api/users/:id/password", rl(self(api.Users.ChangePassword)))
	router.GET("/api/users/:id/bookings", rl(self(api.Users.GetBookings)))
	router.GET("/api/users/:id/favorites", rl(self(api.Users.GetFavorites)))
	router.POST("/api/users/:id/favorites/:artistId", rl(self(api.Favorites.AddFavorite)))
	router.DELETE("/api/users/:id/favorites/:artistId", rl(self(api.Favorites.RemoveFavorite)))
}

func AddBookingRoutes(router *httprouter.Router, api *API) {
	rl := api.Limiter.Limit
	authed := api.MW.Authenticate

	router.POST("/api/bookings", rl(authed(middleware.RequireRoles(api.Bookings.CreateBooking, models.RoleClient))))
	router.GET("/api/bookings/:id", rl(authed(api.Bookings.GetBooking)))
	router.PUT("/api/bookings/:id/status", rl(authed(api.Bookings.UpdateStatus)))
}

func AddReviewRoutes(router *httprouter.Router, api *API) {
	rl := api.Limiter.Limit
	authed := api.MW.Authenticate

	router.POST("/api/reviews", rl(authed(middleware.RequireRoles(api.Reviews.CreateReview, models.RoleClient))))
}
