package delivery_http

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"

	"sionlog-blog-service/internal/delivery/http/middleware"
	post_http "sionlog-blog-service/internal/delivery/http/post"
	profile_http "sionlog-blog-service/internal/delivery/http/profile"
	"sionlog-blog-service/internal/logger"
	"sionlog-blog-service/internal/metrics"
)

// NewRouter wires the post and profile handlers onto the API surface. Reads
// are public; every mutating route sits behind the bearer-token gate.
func NewRouter(
	postAPI *post_http.PostHTTPApi,
	profileAPI *profile_http.ProfileHTTPApi,
	authMw *middleware.Auth,
	allowedOrigins []string,
	log *logger.Logger,
	m metrics.Provider,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	// Public reads.
	mux.Handle("GET /api/v1/posts", postAPI.ListPosts)
	mux.Handle("GET /api/v1/posts/{id}", postAPI.GetPost)
	mux.Handle("GET /api/v1/profiles/{uid}", profileAPI.GetProfile)

	// Authenticated writes.
	mux.Handle("POST /api/v1/posts", authMw.Require(postAPI.CreatePost))
	mux.Handle("PATCH /api/v1/posts/{id}", authMw.Require(postAPI.UpdatePost))
	mux.Handle("DELETE /api/v1/posts/{id}", authMw.Require(postAPI.DeletePost))
	mux.Handle("POST /api/v1/images", authMw.Require(postAPI.UploadImage))
	mux.Handle("PUT /api/v1/profiles/me", authMw.Require(profileAPI.SetProfile))
	mux.Handle("PATCH /api/v1/profiles/me", authMw.Require(profileAPI.UpdateProfile))

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)
	handler = middleware.Logger(log, m)(handler)
	return handler
}
