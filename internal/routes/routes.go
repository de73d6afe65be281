package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/educonnect-booking/internal/audit"
	"github.com/BruksfildServices01/educonnect-booking/internal/auth"
	domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"
	"github.com/BruksfildServices01/educonnect-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/educonnect-booking/internal/infra/repository"
	"github.com/BruksfildServices01/educonnect-booking/internal/middleware"
	"github.com/BruksfildServices01/educonnect-booking/internal/models"
	"github.com/BruksfildServices01/educonnect-booking/internal/session"
	"github.com/BruksfildServices01/educonnect-booking/internal/usecase/account"
	ucCounseling "github.com/BruksfildServices01/educonnect-booking/internal/usecase/counseling"
)

// Deps are the singletons main builds once and every route shares.
type Deps struct {
	DB        *gorm.DB
	Log       *zap.Logger
	Catalog   domain.Catalog
	Gateway   domain.PaymentGateway
	Formatter *domain.PriceFormatter
	Sessions  session.Store
	Tokens    *auth.TokenIssuer
	Audit     *audit.Dispatcher
	Clock     ucCounseling.Clock

	// HoldTTL bounds how long an unpaid checkout blocks its slot.
	HoldTTL time.Duration

	// EmailDomainCheck is consulted on register. Nil skips the check.
	EmailDomainCheck func(ctx context.Context, email string) bool
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA
	// ======================================================
	reservationRepo := infraRepo.NewReservationGormRepository(d.DB, d.HoldTTL)
	userRepo := infraRepo.NewUserGormRepository(d.DB)

	// ======================================================
	// COUNSELING USE CASES
	// ======================================================
	searchUC := ucCounseling.NewSearchCounselors(d.Catalog)
	getCounselorUC := ucCounseling.NewGetCounselor(d.Catalog)
	typesUC := ucCounseling.NewListConsultationTypes(d.Catalog, d.Formatter)
	availabilityUC := ucCounseling.NewGetAvailability(d.Catalog, reservationRepo, d.Clock)
	calendarUC := ucCounseling.NewGetMonthCalendar(d.Catalog, d.Clock)
	summaryUC := ucCounseling.NewBuildSummary(d.Catalog, d.Formatter)
	checkoutUC := ucCounseling.NewCheckout(
		d.Catalog,
		reservationRepo,
		d.Gateway,
		d.Formatter,
		d.Audit,
		d.Log,
		d.Clock,
	)
	confirmUC := ucCounseling.NewConfirmCheckout(reservationRepo, d.Gateway, d.Audit, d.Log, d.Clock)

	// ======================================================
	// ACCOUNT USE CASES
	// ======================================================
	registerUC := account.NewRegister(userRepo, d.Sessions, d.Tokens, d.Audit, d.EmailDomainCheck)
	loginUC := account.NewLogin(userRepo, d.Sessions, d.Tokens, d.Audit)
	logoutUC := account.NewLogout(d.Sessions, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	counselorHandler := handlers.NewCounselorHandler(
		searchUC,
		getCounselorUC,
		typesUC,
		availabilityUC,
		calendarUC,
		d.Log,
	)
	bookingHandler := handlers.NewBookingHandler(summaryUC, checkoutUC, confirmUC, d.Log)
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC, d.Log)
	meHandler := handlers.NewMeHandler(userRepo, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	requireAuth := middleware.AuthMiddleware(d.Tokens, d.Sessions)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/counselors", counselorHandler.List)
		api.GET("/counselors/:id", counselorHandler.Get)
		api.GET("/counselors/:id/availability", counselorHandler.Availability)
		api.GET("/counselors/:id/calendar", counselorHandler.Calendar)
		api.GET("/consultation-types", counselorHandler.ConsultationTypes)

		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(requireAuth)
		{
			secured.POST("/auth/logout", authHandler.Logout)
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/counselors/:id/booking/summary", bookingHandler.Summary)
			secured.POST("/counselors/:id/checkout", bookingHandler.Checkout)
			secured.POST("/reservations/:id/confirm", bookingHandler.Confirm)
		}

		admin := api.Group("/admin")
		admin.Use(requireAuth, middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

