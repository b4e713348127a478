// Package router assembles the gin engine and the route table.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/handler"
	"github.com/noah-isme/school-records-api/internal/middleware"
	"github.com/noah-isme/school-records-api/internal/service"
	"github.com/noah-isme/school-records-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/school-records-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/school-records-api/pkg/middleware/requestid"
)

// Handlers groups every HTTP handler served by the API.
type Handlers struct {
	Auth        *handler.AuthHandler
	Users       *handler.UserHandler
	Students    *handler.StudentHandler
	Teachers    *handler.TeacherHandler
	Classes     *handler.ClassHandler
	Enrollments *handler.EnrollmentHandler
	Attendance  *handler.AttendanceHandler
	Grades      *handler.GradeHandler
	Events      *handler.EventHandler
	Dashboard   *handler.DashboardHandler
	Exports     *handler.ExportHandler
	Metrics     *handler.MetricsHandler
}

// Options configures the engine.
type Options struct {
	APIPrefix      string
	AllowedOrigins []string
	EnableDocs     bool
	Logger         *zap.Logger
	Metrics        *service.MetricsService
	Auth           *service.AuthService
}

// New builds the engine with the ambient middleware chain and registers all routes.
func New(h Handlers, opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.APIPrefix == "" {
		opts.APIPrefix = "/api"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(opts.Logger))
	r.Use(corsmiddleware.New(opts.AllowedOrigins))
	r.Use(middleware.Metrics(opts.Metrics))

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)
	if opts.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(opts.APIPrefix)
	if opts.Auth != nil {
		api.Use(middleware.OptionalJWT(opts.Auth))
	}

	api.POST("/auth/login", h.Auth.Login)

	crud(api.Group("/users"), h.Users)

	students := api.Group("/students")
	students.POST("/import", h.Students.Import)
	crud(students, h.Students)

	crud(api.Group("/teachers"), h.Teachers)
	crud(api.Group("/classes"), h.Classes)
	crud(api.Group("/enrollments"), h.Enrollments)

	attendance := api.Group("/attendance")
	attendance.GET("/summary", h.Attendance.Summary)
	crud(attendance, h.Attendance)

	grades := api.Group("/grades")
	grades.GET("/summary", h.Grades.Summary)
	crud(grades, h.Grades)

	crud(api.Group("/events"), h.Events)

	api.GET("/dashboard/stats", h.Dashboard.Stats)
	api.GET("/activities", h.Dashboard.Activities)
	api.GET("/exports/:resource", h.Exports.Export)

	return r
}

type crudHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func crud(group *gin.RouterGroup, h crudHandler) {
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}
