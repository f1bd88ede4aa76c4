package routes

import (
	"film-catalog/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

// Setup mounts the two public surfaces. Both share the same film handlers;
// /admin additionally gets the mutating film routes and user administration,
// /user gets registration and favorites.
func Setup(app *fiber.App, filmHandler *handlers.FilmHandler, userHandler *handlers.UserHandler, favoriteHandler *handlers.FavoriteHandler, uploadHandler *handlers.UploadHandler) {
	admin := app.Group("/admin")
	{
		admin.Get("/", filmHandler.ListFilms)
		admin.Get("/search", filmHandler.SearchFilms)

		films := admin.Group("/films")
		films.Post("/", filmHandler.CreateFilm)
		films.Get("/:film_id", filmHandler.GetFilm)
		films.Put("/:film_id", filmHandler.UpdateFilm)
		films.Delete("/:film_id", filmHandler.DeleteFilm)

		admin.Get("/users/", userHandler.ListUsers)
		admin.Delete("/users/:user_id", userHandler.DeleteUser)

		if uploadHandler != nil {
			admin.Get("/upload/presign", uploadHandler.GetPresignedURL)
		}
	}

	user := app.Group("/user")
	{
		user.Get("/", filmHandler.ListFilms)
		user.Get("/search", filmHandler.SearchFilms)
		user.Post("/register", userHandler.Register)

		favorites := user.Group("/favorites")
		favorites.Post("/:user_id/:film_id", favoriteHandler.AddFavorite)
		favorites.Get("/:user_id", favoriteHandler.ListFavorites)
		favorites.Delete("/:user_id/:film_id", favoriteHandler.RemoveFavorite)
	}
}
