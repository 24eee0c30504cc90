package router

import (
	"context"
	"fmt"
	"net/http"

	"pet-care/internal/adapters/auth/password"
	mem "pet-care/internal/adapters/storage/memory"
	"pet-care/internal/adapters/storage/sqldb"
	_ "pet-care/internal/docs"
	"pet-care/internal/domain/adoptions"
	"pet-care/internal/domain/appointments"
	"pet-care/internal/domain/dashboard"
	"pet-care/internal/domain/pets"
	"pet-care/internal/domain/users"
	"pet-care/internal/middleware"
	"pet-care/internal/platform/logger"
	"pet-care/internal/platform/metrics"
	"pet-care/internal/ports/auth"
	"pet-care/internal/ports/storage"
	"pet-care/internal/seed"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/crypto/bcrypt"
)

type Options struct {
	Logger logger.Logger // nil => Nop

	// Sessions resuelve el acting user. nil => ningún request tiene usuario.
	Sessions auth.SessionResolver

	// Opcional: si viene, usa el store SQL (sqlite/postgres). Si no, in-memory.
	DB *sqlx.DB

	// Hasher de passwords; nil => bcrypt con costo default.
	Hasher users.PasswordHasher

	// Seed carga los datos demo antes de devolver el router.
	Seed bool

	// StaticDir sirve el front (páginas y assets) en "/" si viene.
	StaticDir string

	MetricsNamespace string // default "petcare"
}

type stores struct {
	users        users.Repository
	pets         pets.Repository
	appointments appointments.Repository
	adoptions    adoptions.Repository
	tx           storage.TxRunner
	gateway      *sqldb.Gateway // nil en memoria
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	hasher := opts.Hasher
	if hasher == nil {
		hasher = password.NewBcryptHasher(bcrypt.DefaultCost)
	}
	ns := opts.MetricsNamespace
	if ns == "" {
		ns = "petcare"
	}

	st := newStores(opts.DB)

	if opts.Seed {
		s := seed.New(seed.Repos{
			Users:     st.users,
			Pets:      st.pets,
			Adoptions: st.adoptions,
		}, hasher, st.tx, log)
		if _, err := s.Run(context.Background()); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	// Services por módulo
	usersSvc := users.NewService(st.users, hasher, st.tx)
	petsSvc := pets.NewService(st.pets, st.tx)
	apptSvc := appointments.NewService(st.appointments, petsSvc, st.tx)
	adoptSvc := adoptions.NewService(st.adoptions, st.tx)
	dashSvc := dashboard.NewService(usersSvc, petsSvc, apptSvc, adoptSvc)

	m := metrics.New(ns)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)
	r.Use(m.Middleware)

	r.Use(middleware.AuthContext(opts.Sessions))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		if st.gateway != nil {
			api.Use(st.gateway.Middleware)
		}

		users.RegisterRoutes(api, usersSvc, opts.Sessions, log)
		dashboard.RegisterRoutes(api, dashSvc, log)
		pets.RegisterRoutes(api, petsSvc, log)
		appointments.RegisterRoutes(api, apptSvc, log)
		adoptions.RegisterRoutes(api, adoptSvc, log)
	})

	if opts.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(opts.StaticDir)))
	}

	return r, nil
}

func newStores(db *sqlx.DB) stores {
	if db == nil {
		return stores{
			users:        mem.NewUserRepo(),
			pets:         mem.NewPetRepo(),
			appointments: mem.NewAppointmentRepo(),
			adoptions:    mem.NewAdoptionRepo(),
			tx:           storage.NoTx{},
		}
	}

	gw := sqldb.NewGateway(db)
	return stores{
		users:        sqldb.NewUsersRepo(gw),
		pets:         sqldb.NewPetsRepo(gw),
		appointments: sqldb.NewAppointmentsRepo(gw),
		adoptions:    sqldb.NewAdoptionsRepo(gw),
		tx:           gw,
		gateway:      gw,
	}
}
