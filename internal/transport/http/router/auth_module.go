package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neighborlend/internal/domain"
	"neighborlend/internal/service"
	httpez "neighborlend/internal/transport/http/ez"
)

// AuthModule exposes login (with first-login auto-provisioning) and the
// current-user profile.
type AuthModule struct {
	users *service.UserService
}

func NewAuthModule(users *service.UserService) *AuthModule {
	return &AuthModule{users: users}
}

func (m *AuthModule) Priority() int { return 10 }

func (m *AuthModule) MountAPI(public, authed *gin.RouterGroup) {
	ezPublic := httpez.New(public)
	ezAuth := httpez.New(authed)

	type loginIn struct {
		Email    string `json:"email"    binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Name     string `json:"name"     binding:"omitempty,max=64"` // used on first login only
	}
	type loginOut struct {
		Token string       `json:"token"`
		IsNew bool         `json:"isNew"`
		User  *domain.User `json:"user"`
	}
	httpez.Register(ezPublic, httpez.Action[loginIn, loginOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *loginIn) (loginOut, error) {
			res, err := m.users.Login(c.Request.Context(), in.Email, in.Password, in.Name)
			if err != nil {
				return loginOut{}, err
			}
			return loginOut{Token: res.Token, IsNew: res.IsNew, User: res.User}, nil
		},
	})

	httpez.Register(ezAuth, httpez.Action[struct{}, *domain.User]{
		Method: http.MethodGet,
		Path:   "/me",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.User, error) {
			return m.users.Profile(c.Request.Context(), c.GetString("userId"))
		},
	})
}
