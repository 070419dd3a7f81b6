package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"neighborlend/internal/core/auth"
	"neighborlend/internal/core/cache"
	"neighborlend/internal/repo"
	"neighborlend/internal/service"
	mdw "neighborlend/internal/transport/http/middleware"
)

// NewAPIEngine wires the public marketplace API: catalog and listing
// detail are open; everything else sits behind the JWT group. cch may be
// nil to run without the redis read cache.
func NewAPIEngine(l *zap.Logger, db *gorm.DB, cch *cache.Cache, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	authed := api.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))

	users := service.NewUserService(repo.NewUserRepo(db), jwter)
	listings := service.NewListingService(repo.NewListingRepo(db), cch)
	bookings := service.NewBookingService(repo.NewBookingRepo(db))

	Register(NewAuthModule(users))
	Register(NewListingModule(listings))
	Register(NewBookingModule(bookings))

	MountAllAPI(api, authed)

	return r
}
