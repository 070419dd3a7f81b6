package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neighborlend/internal/service"
	httpez "neighborlend/internal/transport/http/ez"
)

// AdminUserModule is the management surface over accounts: directory with
// search and soft-deleted rows, and ban (soft delete).
type AdminUserModule struct {
	users *service.UserService
}

func NewAdminUserModule(users *service.UserService) *AdminUserModule {
	return &AdminUserModule{users: users}
}

func (m *AdminUserModule) Priority() int { return 10 }

func (m *AdminUserModule) MountAdmin(admin *gin.RouterGroup) {
	ezAdmin := httpez.New(admin)

	type listQ struct {
		Offset      int    `form:"offset,default=0"`
		Limit       int    `form:"limit,default=20"`
		Q           string `form:"q"`            // email/name search
		WithDeleted bool   `form:"with_deleted"` // include banned accounts
	}
	type row struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	}
	type listOut struct {
		Total int64 `json:"total"`
		Items []row `json:"items"`
	}
	httpez.Register(ezAdmin, httpez.Action[listQ, listOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) (listOut, error) {
			us, total, err := m.users.ListUsers(c.Request.Context(), in.Q, in.Offset, in.Limit, in.WithDeleted)
			if err != nil {
				return listOut{}, err
			}
			out := listOut{Total: total, Items: make([]row, 0, len(us))}
			for _, u := range us {
				out.Items = append(out.Items, row{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role})
			}
			return out, nil
		},
	})

	httpez.Register(ezAdmin, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/users/:id/ban",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if err := m.users.Ban(c.Request.Context(), id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}
