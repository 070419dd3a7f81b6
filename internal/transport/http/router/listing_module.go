package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neighborlend/internal/domain"
	"neighborlend/internal/service"
	httpez "neighborlend/internal/transport/http/ez"
)

// ListingModule exposes the public catalog, listing detail, and
// owner-gated listing CRUD; its admin surface is moderation.
type ListingModule struct {
	listings *service.ListingService
}

func NewListingModule(listings *service.ListingService) *ListingModule {
	return &ListingModule{listings: listings}
}

func (m *ListingModule) Priority() int { return 20 }

func (m *ListingModule) MountAPI(public, authed *gin.RouterGroup) {
	ezPublic := httpez.New(public)
	ezAuth := httpez.New(authed)

	httpez.Register(ezPublic, httpez.Action[struct{}, []domain.Listing]{
		Method: http.MethodGet,
		Path:   "/listings",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Listing, error) {
			return m.listings.Catalog(c.Request.Context())
		},
	})

	httpez.Register(ezPublic, httpez.Action[struct{}, *domain.Listing]{
		Method: http.MethodGet,
		Path:   "/listings/:id",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.Listing, error) {
			return m.listings.Get(c.Request.Context(), c.Param("id"))
		},
	})

	type createIn struct {
		Title       string  `json:"title"       binding:"required,max=120"`
		Description string  `json:"description" binding:"omitempty"`
		Category    string  `json:"category"    binding:"omitempty,max=32"`
		DailyRate   float64 `json:"dailyRate"   binding:"omitempty,gte=0"`
		Address     string  `json:"address"     binding:"omitempty,max=255"`
		ImageURL    string  `json:"imageUrl"    binding:"omitempty,max=255"`
	}
	httpez.Register(ezAuth, httpez.Action[createIn, *domain.Listing]{
		Method: http.MethodPost,
		Path:   "/listings",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *createIn) (*domain.Listing, error) {
			return m.listings.Create(c.Request.Context(), c.GetString("userId"), service.CreateListingInput{
				Title:       in.Title,
				Description: in.Description,
				Category:    in.Category,
				DailyRate:   in.DailyRate,
				Address:     in.Address,
				ImageURL:    in.ImageURL,
			})
		},
	})

	type updateIn struct {
		Title       *string  `json:"title"       binding:"omitempty,max=120"`
		Description *string  `json:"description"`
		Category    *string  `json:"category"    binding:"omitempty,max=32"`
		DailyRate   *float64 `json:"dailyRate"   binding:"omitempty,gte=0"`
		Address     *string  `json:"address"     binding:"omitempty,max=255"`
		ImageURL    *string  `json:"imageUrl"    binding:"omitempty,max=255"`
		IsAvailable *bool    `json:"isAvailable"`
	}
	httpez.Register(ezAuth, httpez.Action[updateIn, *domain.Listing]{
		Method: http.MethodPatch,
		Path:   "/listings/:id",
		Binder: httpez.BindJSON,
		Auth:   true,
		Handler: func(c *gin.Context, in *updateIn) (*domain.Listing, error) {
			return m.listings.Update(c.Request.Context(), c.GetString("userId"), c.Param("id"), service.UpdateListingInput{
				Title:       in.Title,
				Description: in.Description,
				Category:    in.Category,
				DailyRate:   in.DailyRate,
				Address:     in.Address,
				ImageURL:    in.ImageURL,
				IsAvailable: in.IsAvailable,
			})
		},
	})

	httpez.Register(ezAuth, httpez.Action[struct{}, gin.H]{
		Method: http.MethodDelete,
		Path:   "/listings/:id",
		Binder: httpez.BindNone,
		Auth:   true,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if err := m.listings.Delete(c.Request.Context(), c.GetString("userId"), id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}

func (m *ListingModule) MountAdmin(admin *gin.RouterGroup) {
	ezAdmin := httpez.New(admin)

	type listQ struct {
		Offset int    `form:"offset,default=0"`
		Limit  int    `form:"limit,default=20"`
		Q      string `form:"q"` // title/category search
	}
	type listOut struct {
		Total int64            `json:"total"`
		Items []domain.Listing `json:"items"`
	}
	httpez.Register(ezAdmin, httpez.Action[listQ, listOut]{
		Method: http.MethodGet,
		Path:   "/listings",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *listQ) (listOut, error) {
			items, total, err := m.listings.ListAll(c.Request.Context(), in.Q, in.Offset, in.Limit)
			if err != nil {
				return listOut{}, err
			}
			return listOut{Total: total, Items: items}, nil
		},
	})

	httpez.Register(ezAdmin, httpez.Action[struct{}, gin.H]{
		Method: http.MethodPost,
		Path:   "/listings/:id/delist",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (gin.H, error) {
			id := c.Param("id")
			if err := m.listings.Delist(c.Request.Context(), id); err != nil {
				return nil, err
			}
			return gin.H{"id": id}, nil
		},
	})
}
