package server

import (
	"context"
	"net/http"
	"time"

	"github.com/amanahworks/folio/internal/analytics"
	analyticsdomain "github.com/amanahworks/folio/internal/analytics/domain"
	"github.com/amanahworks/folio/internal/article"
	articledomain "github.com/amanahworks/folio/internal/article/domain"
	"github.com/amanahworks/folio/internal/auth"
	authdomain "github.com/amanahworks/folio/internal/auth/domain"
	authoauth "github.com/amanahworks/folio/internal/auth/oauth"
	"github.com/amanahworks/folio/internal/auth/session"
	"github.com/amanahworks/folio/internal/calcresult"
	calcdomain "github.com/amanahworks/folio/internal/calcresult/domain"
	"github.com/amanahworks/folio/internal/config"
	"github.com/amanahworks/folio/internal/contact"
	contactdomain "github.com/amanahworks/folio/internal/contact/domain"
	"github.com/amanahworks/folio/internal/lead"
	leaddomain "github.com/amanahworks/folio/internal/lead/domain"
	obsmetrics "github.com/amanahworks/folio/internal/observability/metrics"
	obstracing "github.com/amanahworks/folio/internal/observability/tracing"
	"github.com/amanahworks/folio/internal/ratelimit"
	"github.com/amanahworks/folio/internal/testimonial"
	testimonialdomain "github.com/amanahworks/folio/internal/testimonial/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("server",
	session.Module,
	auth.Module,
	article.Module,
	testimonial.Module,
	contact.Module,
	lead.Module,
	calcresult.Module,
	analytics.Module,
	ratelimit.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

// Server holds the handler dependencies. Routes are registered once at
// startup via registerRoutes.
type Server struct {
	cfg      config.Config
	calcCfg  *config.CalculatorConfigHolder
	log      *zap.Logger
	sessions *session.Manager
	limiter  *ratelimit.FormLimiter
	metrics  *obsmetrics.HTTPMetrics

	authsvc        authdomain.Service
	oauthsvc       authoauth.Service
	articlesvc     articledomain.Service
	testimonialsvc testimonialdomain.Service
	contactsvc     contactdomain.Service
	leadsvc        leaddomain.Service
	calcresultsvc  calcdomain.Service
	analyticssvc   analyticsdomain.Service
}

type ServerParams struct {
	fx.In

	Config   config.Config
	CalcCfg  *config.CalculatorConfigHolder
	Log      *zap.Logger
	Sessions *session.Manager
	Limiter  *ratelimit.FormLimiter
	Metrics  *obsmetrics.HTTPMetrics

	AuthService        authdomain.Service
	OAuthService       authoauth.Service
	ArticleService     articledomain.Service
	TestimonialService testimonialdomain.Service
	ContactService     contactdomain.Service
	LeadService        leaddomain.Service
	CalcResultService  calcdomain.Service
	AnalyticsService   analyticsdomain.Service
}

func NewServer(p ServerParams) *Server {
	return &Server{
		cfg:            p.Config,
		calcCfg:        p.CalcCfg,
		log:            p.Log.Named("server"),
		sessions:       p.Sessions,
		limiter:        p.Limiter,
		metrics:        p.Metrics,
		authsvc:        p.AuthService,
		oauthsvc:       p.OAuthService,
		articlesvc:     p.ArticleService,
		testimonialsvc: p.TestimonialService,
		contactsvc:     p.ContactService,
		leadsvc:        p.LeadService,
		calcresultsvc:  p.CalcResultService,
		analyticssvc:   p.AnalyticsService,
	}
}

func NewEngine(cfg config.Config, log *zap.Logger, metrics *obsmetrics.HTTPMetrics) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(log.Named("http")))
	engine.Use(obstracing.GinMiddleware())
	engine.Use(obsmetrics.GinMiddleware(metrics))
	engine.Use(ErrorHandlingMiddleware())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return engine
}

func registerRoutes(engine *gin.Engine, s *Server) {
	// -------- Auth --------
	authGroup := engine.Group("/auth")
	authGroup.POST("/register", s.Register)
	authGroup.POST("/login", s.Login)
	authGroup.POST("/logout", s.Logout)
	authGroup.GET("/providers", s.AuthProviders)
	authGroup.GET("/login/:name", s.OAuthLogin)
	authGroup.GET("/me", s.AuthRequired(), s.Me)

	// -------- Public API --------
	api := engine.Group("/api")
	api.GET("/articles", s.ListPublishedArticles)
	api.GET("/articles/:slug", s.GetArticle)
	api.GET("/testimonials", s.ListVisibleTestimonials)
	api.POST("/contact", s.SubmitContact)
	api.POST("/leads", s.CaptureLead)
	api.POST("/calculators/:variant", s.RunCalculator)
	api.POST("/track", s.TrackPageView)

	// -------- Admin API --------
	admin := engine.Group("/admin/api", s.AuthRequired(), s.AdminRequired())
	admin.GET("/articles", s.AdminListArticles)
	admin.POST("/articles", s.CreateArticle)
	admin.GET("/articles/:slug", s.AdminGetArticle)
	admin.PATCH("/articles/:id", s.UpdateArticle)
	admin.POST("/articles/:id/publish", s.SetArticlePublished)
	admin.DELETE("/articles/:id", s.DeleteArticle)

	admin.GET("/testimonials", s.AdminListTestimonials)
	admin.POST("/testimonials", s.CreateTestimonial)
	admin.PATCH("/testimonials/:id", s.UpdateTestimonial)
	admin.DELETE("/testimonials/:id", s.DeleteTestimonial)

	admin.GET("/messages", s.ListContactMessages)
	admin.POST("/messages/:id/read", s.MarkContactMessageRead)
	admin.DELETE("/messages/:id", s.DeleteContactMessage)

	admin.GET("/leads", s.ListLeads)
	admin.POST("/leads/:id/status", s.TransitionLead)

	admin.GET("/calculator-results", s.ListCalculatorResults)
	admin.GET("/analytics/summary", s.AnalyticsSummary)
}

func run(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			log.Info("http server starting", zap.String("addr", cfg.ListenAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
