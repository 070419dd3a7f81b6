package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"neighborlend/internal/core/auth"
	"neighborlend/internal/repo"
	"neighborlend/internal/service"
	mdw "neighborlend/internal/transport/http/middleware"
)

// NewAdminEngine wires the management API on its own port; every route
// under /admin/v1 requires the admin role.
func NewAdminEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		ginzap.Ginzap(l, time.RFC3339, true),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, "admin"))

	users := service.NewUserService(repo.NewUserRepo(db), jwter)
	listings := service.NewListingService(repo.NewListingRepo(db), nil)

	Register(NewAdminUserModule(users))
	Register(NewListingModule(listings))

	MountAllAdmin(admin)

	return r
}
