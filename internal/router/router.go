package router

import (
	"time"

	"uniformes/internal/config"
	"uniformes/internal/handler"
	"uniformes/internal/infra"
	"uniformes/internal/middleware"
	"uniformes/internal/repository"
	"uniformes/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Services is everything the HTTP layer depends on.
type Services struct {
	Trabajadores         service.TrabajadorService
	Entregas             service.EntregaService
	Lavanderia           service.LavanderiaService
	DevolucionesUniforme service.DevolucionUniformeService
	Estadisticas         service.EstadisticasService
}

// NewServices wires the service graph: Service ← Repository ← DB.
func NewServices(cfg *config.Config, db *gorm.DB) Services {
	// ── Repositories ─────────────────────────────────────────────────────────
	trabajadorRepo := repository.NewTrabajadorRepository(db)
	entregaRepo := repository.NewEntregaRepository(db)
	lavanderiaRepo := repository.NewLavanderiaRepository(db)
	devolucionUniformeRepo := repository.NewDevolucionUniformeRepository(db)

	// ── Infrastructure ───────────────────────────────────────────────────────
	renderer := infra.NewPDFRenderer(cfg.PDFStoragePath)

	return Services{
		Trabajadores:         service.NewTrabajadorService(trabajadorRepo),
		Entregas:             service.NewEntregaService(entregaRepo, trabajadorRepo, renderer),
		Lavanderia:           service.NewLavanderiaService(lavanderiaRepo, cfg.RecentLaundryLimit),
		DevolucionesUniforme: service.NewDevolucionUniformeService(devolucionUniformeRepo, trabajadorRepo),
		Estadisticas:         service.NewEstadisticasService(trabajadorRepo, entregaRepo, lavanderiaRepo),
	}
}

// New wires all dependencies and returns a configured Gin engine.
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	return Engine(cfg, NewServices(cfg, db), handler.Health(db, cfg.PDFStoragePath))
}

// Engine builds the Gin engine around already-built services.
func Engine(cfg *config.Config, svcs Services, health gin.HandlerFunc) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Handlers ─────────────────────────────────────────────────────────────
	trabajadoresH := handler.NewTrabajadoresHandler(svcs.Trabajadores)
	entregasH := handler.NewEntregasHandler(svcs.Entregas)
	lavanderiaH := handler.NewLavanderiaHandler(svcs.Lavanderia)
	devolucionesH := handler.NewDevolucionesUniformeHandler(svcs.DevolucionesUniforme)
	estadisticasH := handler.NewEstadisticasHandler(svcs.Estadisticas)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/users", trabajadoresH.Crear)
		api.GET("/users/:dni", trabajadoresH.ObtenerPorDNI)

		api.POST("/deliveries", entregasH.Registrar)
		api.GET("/deliveries/report", entregasH.Reporte)
		api.GET("/deliveries/:id/pdf", entregasH.DescargarPDF)
		api.GET("/delivery/report", entregasH.Reporte) // legacy path used by the dashboard

		lav := api.Group("/laundry")
		{
			lav.POST("", lavanderiaH.CrearEnvio)
			lav.GET("", lavanderiaH.ListarRecientes)
			lav.POST("/return", lavanderiaH.RegistrarDevolucion)
			lav.GET("/report", lavanderiaH.Reporte)
			lav.GET("/guide/:guide", lavanderiaH.ObtenerEnvio)
			lav.GET("/:key/status", lavanderiaH.Estado)
		}
		api.GET("/reports/laundry", lavanderiaH.Reporte) // legacy

		api.POST("/uniform-returns", devolucionesH.Registrar)
		api.GET("/uniform-returns/report", devolucionesH.Reporte)

		api.GET("/stats", estadisticasH.Obtener)
	}

	// Swagger UI, only outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(handler.Frontend(cfg.FrontendDir))

	return r
}
