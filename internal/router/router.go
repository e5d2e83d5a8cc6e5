package router

import (
	"net/http"
	"net/url"
	"os"
	"strings"

	docs "github.com/doum4811/startbeyond-backend/api"
	"github.com/doum4811/startbeyond-backend/internal/auth"
	v1 "github.com/doum4811/startbeyond-backend/internal/controllers/v1"
	"github.com/doum4811/startbeyond-backend/internal/httperror"
	"github.com/doum4811/startbeyond-backend/internal/httputil"
	"github.com/doum4811/startbeyond-backend/internal/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config sets up the router with all middlewares. The returned teardown
// function must be called when the router is discarded, it releases the
// Prometheus metrics so that Config can be called again.
func Config(url *url.URL) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperror.NewFromString("This HTTP method is not allowed for the endpoint you called"))
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	r.Use(ErrorsMiddleware())

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}
	r.Use(MetricsMiddleware())

	teardown := func() {
		unregisterPrometheusMetrics()
	}

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "StartBeyond"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for StartBeyond, a personal planning and journaling service."

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config() allows us to attach it to different
// paths for different use cases, e.g. the standalone version.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 setup
	apiV1 := group.Group("/v1")
	{
		apiV1.GET("", GetV1)
		apiV1.OPTIONS("", OptionsV1)
	}

	// Registration and login are the only endpoints that work without
	// a token
	v1.RegisterAuthRoutes(apiV1.Group("/auth"))

	authenticated := apiV1.Group("", auth.Middleware())
	{
		authenticated.DELETE("", v1.Cleanup)

		v1.RegisterProfileRoutes(authenticated.Group("/profiles"))
		v1.RegisterCategoryRoutes(authenticated.Group("/categories"))
		v1.RegisterUserCategoryRoutes(authenticated.Group("/categories/custom"))
		v1.RegisterDailyRecordRoutes(authenticated.Group("/records"))
		v1.RegisterDailyPlanRoutes(authenticated.Group("/plans"))
		v1.RegisterWeeklyTaskRoutes(authenticated.Group("/weekly-tasks"))
		v1.RegisterMonthlyGoalRoutes(authenticated.Group("/monthly-goals"))
		v1.RegisterDailyNoteRoutes(authenticated.Group("/notes"))
		v1.RegisterMemoRoutes(authenticated.Group("/memos"))
		v1.RegisterPostRoutes(authenticated.Group("/posts"))
		v1.RegisterMessageRoutes(authenticated.Group("/messages"))
		v1.RegisterStatsRoutes(authenticated.Group("/stats"))
		v1.RegisterExportRoutes(authenticated.Group("/export"))
	}
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/api/docs/index.html"` // Swagger API documentation
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"`      // Prometheus metrics
	Version string `json:"version" example:"https://example.com/api/version"`      // Endpoint returning the version of the backend
	V1      string `json:"v1" example:"https://example.com/api/v1"`                // List endpoint for all v1 endpoints
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    url + "/docs/index.html",
			Metrics: url + "/metrics",
			Version: url + "/version",
			V1:      url + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Auth         string `json:"auth" example:"https://example.com/api/v1/auth"`                  // Registration and login
	Profiles     string `json:"profiles" example:"https://example.com/api/v1/profiles"`          // The authenticated profile
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`      // Effective category list and custom categories
	Records      string `json:"records" example:"https://example.com/api/v1/records"`            // Daily records
	Plans        string `json:"plans" example:"https://example.com/api/v1/plans"`                // Daily plans
	WeeklyTasks  string `json:"weeklyTasks" example:"https://example.com/api/v1/weekly-tasks"`   // Weekly tasks
	MonthlyGoals string `json:"monthlyGoals" example:"https://example.com/api/v1/monthly-goals"` // Monthly goals
	Notes        string `json:"notes" example:"https://example.com/api/v1/notes"`                // Daily notes
	Memos        string `json:"memos" example:"https://example.com/api/v1/memos"`                // Memos
	Posts        string `json:"posts" example:"https://example.com/api/v1/posts"`                // Community posts
	Messages     string `json:"messages" example:"https://example.com/api/v1/messages"`          // Direct messages
	Stats        string `json:"stats" example:"https://example.com/api/v1/stats"`                // Per-category aggregates
	Export       string `json:"export" example:"https://example.com/api/v1/export"`              // Complete data export
}

// GetV1 returns the link list for the v1 API
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			General
//	@Success		200	{object}	V1Response
//	@Router			/v1 [get]
func GetV1(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Auth:         url + "/auth",
			Profiles:     url + "/profiles",
			Categories:   url + "/categories",
			Records:      url + "/records",
			Plans:        url + "/plans",
			WeeklyTasks:  url + "/weekly-tasks",
			MonthlyGoals: url + "/monthly-goals",
			Notes:        url + "/notes",
			Memos:        url + "/memos",
			Posts:        url + "/posts",
			Messages:     url + "/messages",
			Stats:        url + "/stats",
			Export:       url + "/export",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	c.Header("allow", "OPTIONS, GET, DELETE")
	c.Status(http.StatusNoContent)
}
