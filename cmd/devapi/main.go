// devapi es un backend de desarrollo que replica el contrato HTTP del
// servidor real de registros ganaderos. Sirve para probar el cliente y la
// CLI sin depender del despliegue: arranca con repos in-memory sembrados,
// o contra Postgres si se define DB_DSN.
package main

import (
	"net/http"
	"os"
	"time"

	"livestock-records/internal/adapters/auth/jwtauth"
	"livestock-records/internal/platform/logger"
	"livestock-records/internal/router"
)

func main() {
	log := logger.NewFromEnv().With(map[string]any{"component": "devapi"})

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	var opts router.Options
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		authn := jwtauth.New(secret)
		opts.AuthVerifier = authn
		opts.TokenIssuer = authn
	} else {
		// Sin secreto no hay verificación: modo dev con X-Debug-User-ID.
		opts.TokenIssuer = jwtauth.New("dev-only-secret")
		log.Warn("JWT_SECRET no definido, tokens con secreto de desarrollo", nil)
	}
	opts.MediaDir = os.Getenv("MEDIA_DIR")

	r := router.NewRouter(opts)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
