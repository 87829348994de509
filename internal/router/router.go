package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"

	"livestock-records/internal/adapters/media"
	mem "livestock-records/internal/adapters/storage/memory"
	pg "livestock-records/internal/adapters/storage/postgres"
	"livestock-records/internal/domain/animals"
	"livestock-records/internal/domain/breeds"
	"livestock-records/internal/domain/dashboard"
	"livestock-records/internal/domain/iot"
	"livestock-records/internal/domain/scoring"
	"livestock-records/internal/domain/users"
	"livestock-records/internal/middleware"
	"livestock-records/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev con X-Debug-User-ID)
	TokenIssuer  users.TokenIssuer

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Directorio donde se guardan las fotos. Vacío = "media".
	MediaDir string
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		animalRepo   animals.Repository
		breedRepo    breeds.Repository
		templateRepo scoring.TemplateRepository
		scoreRepo    scoring.ScoreRepository
		iotRepo      iot.Repository
		userRepo     users.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		if err := prepareDB(db); err != nil {
			// Esquema o semilla fallaron: mejor arrancar in-memory que a medias.
			db = nil
		}
	}

	if db != nil {
		animalRepo = pg.NewAnimalsRepo(db)
		breedRepo = pg.NewBreedsRepo(db)
		templateRepo = pg.NewTemplatesRepo(db)
		scoreRepo = pg.NewScoresRepo(db)
		iotRepo = pg.NewIoTRepo(db)
		userRepo = pg.NewUsersRepo(db)
	} else {
		animalRepo = mem.NewAnimalRepo()
		breedRepo = mem.NewBreedRepo()
		templateRepo = mem.NewTemplateRepo()
		scoreRepo = mem.NewScoreRepo()
		iotRepo = mem.NewIoTRepo()
		userRepo = mem.NewUserRepo()
	}

	// Services por módulo
	animalsSvc := animals.NewService(animalRepo)
	breedsSvc := breeds.NewService(breedRepo)
	scoringSvc := scoring.NewService(templateRepo, scoreRepo)
	iotSvc := iot.NewService(iotRepo)
	usersSvc := users.NewService(userRepo)
	dashboardSvc := dashboard.NewService(animalsSvc, breedsSvc)

	mediaDir := opts.MediaDir
	if mediaDir == "" {
		mediaDir = "media"
	}
	photos := media.NewDiskStore(mediaDir)
	r.Handle("/media/*", http.StripPrefix("/media/", photos.Handler()))

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc, photos)
	breeds.RegisterRoutes(r, breedsSvc)
	scoring.RegisterRoutes(r, scoringSvc, animalsSvc)
	iot.RegisterRoutes(r, iotSvc)
	users.RegisterRoutes(r, usersSvc, opts.TokenIssuer)
	dashboard.RegisterRoutes(r, dashboardSvc)

	return r
}

// prepareDB crea el esquema y siembra el catálogo de razas y las rúbricas.
func prepareDB(db *sql.DB) error {
	ctx := context.Background()
	if err := pg.EnsureSchema(ctx, db); err != nil {
		return err
	}
	if err := pg.NewBreedsRepo(db).SeedBreeds(ctx); err != nil {
		return err
	}
	return pg.NewTemplatesRepo(db).SeedTemplates(ctx)
}
