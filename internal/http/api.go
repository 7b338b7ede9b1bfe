package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"songbox/internal/domain"
	"songbox/internal/filter"
	"songbox/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	accounts service.AccountService
	songs    service.SongService
	logger   *logrus.Logger
}

func NewHandler(accounts service.AccountService, songs service.SongService, logger *logrus.Logger) *Handler {
	return &Handler{
		accounts: accounts,
		songs:    songs,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusAccepted, gin.H{"ok": "ok"})
		})

		songs := api.Group("/songs", callerIDMiddleware())
		{
			songs.GET("", h.listSongs)
			songs.POST("", h.createSong)
			songs.GET("/:id", h.getSong)
			songs.PUT("/:id", h.updateSong)
			songs.DELETE("/:id", h.deleteSong)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-User-ID")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

const callerIDKey = "callerID"

// callerIDMiddleware reads the caller's account id from the X-User-ID
// header and trusts it as-is. Verified session or token extraction would
// replace this middleware; the handlers below only consume the id.
func callerIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := c.GetHeader("X-User-ID")
		if callerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrUnauthenticated.Error()})
			return
		}
		c.Set(callerIDKey, callerID)
		c.Next()
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type songRequest struct {
	Title  string `json:"title"`
	Singer string `json:"singer"`
	Year   int    `json:"year"`
}

type AccountResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	Account AccountResponse `json:"account"`
	Token   string          `json:"token"`
}

type SongResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Singer    string `json:"singer"`
	Year      int    `json:"year"`
	OwnerID   string `json:"owner_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, token, err := h.accounts.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Account: accountToResponse(account),
		Token:   token,
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, token, err := h.accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Account: accountToResponse(account),
		Token:   token,
	})
}

func (h *Handler) listSongs(c *gin.Context) {
	songs, err := h.songs.ListOwned(c.Request.Context(), c.GetString(callerIDKey))
	if err != nil {
		h.renderError(c, err)
		return
	}

	params, filtered, err := listFilterParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if filtered {
		songs = filter.Apply(songs, params)
	}

	resp := make([]SongResponse, len(songs))
	for i := range songs {
		resp[i] = songToResponse(songs[i])
	}
	c.JSON(http.StatusOK, resp)
}

// listFilterParams maps optional query parameters onto the display filter.
// With no parameters present the list is returned unfiltered, in insertion
// order.
func listFilterParams(c *gin.Context) (filter.Params, bool, error) {
	params := filter.Params{
		Query:  c.Query("search"),
		Singer: c.Query("singer"),
		Letter: c.Query("letter"),
	}
	filtered := params.Query != "" || params.Singer != "" || params.Letter != ""

	years := filter.DefaultRange()
	if raw := c.Query("year_from"); raw != "" {
		from, err := strconv.Atoi(raw)
		if err != nil {
			return filter.Params{}, false, errors.New("invalid year_from")
		}
		years = years.WithFrom(from)
		filtered = true
	}
	if raw := c.Query("year_to"); raw != "" {
		to, err := strconv.Atoi(raw)
		if err != nil {
			return filter.Params{}, false, errors.New("invalid year_to")
		}
		years = years.WithTo(to)
		filtered = true
	}
	params.Years = years

	return params, filtered, nil
}

func (h *Handler) createSong(c *gin.Context) {
	var req songRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := h.songs.Create(c.Request.Context(), c.GetString(callerIDKey), req.Title, req.Singer, req.Year)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, songToResponse(*song))
}

func (h *Handler) getSong(c *gin.Context) {
	song, err := h.songs.GetOwned(c.Request.Context(), c.GetString(callerIDKey), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, songToResponse(*song))
}

func (h *Handler) updateSong(c *gin.Context) {
	var req songRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	song, err := h.songs.Update(c.Request.Context(), c.GetString(callerIDKey), c.Param("id"), req.Title, req.Singer, req.Year)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, songToResponse(*song))
}

func (h *Handler) deleteSong(c *gin.Context) {
	songID := c.Param("id")
	if err := h.songs.Delete(c.Request.Context(), c.GetString(callerIDKey), songID); err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": songID})
}

// renderError maps the error taxonomy onto HTTP statuses. Anything
// unrecognized is logged and reported as a generic internal error.
func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err) || errors.Is(err, domain.ErrInvalidYear):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthenticated) || errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrEmailConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": domain.ErrInternal.Error()})
	}
}

func accountToResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		CreatedAt: account.CreatedAt.Format(time.RFC3339),
	}
}

func songToResponse(song domain.Song) SongResponse {
	return SongResponse{
		ID:        song.ID,
		Title:     song.Title,
		Singer:    song.Singer,
		Year:      song.Year,
		OwnerID:   song.OwnerID,
		CreatedAt: song.CreatedAt.Format(time.RFC3339),
		UpdatedAt: song.UpdatedAt.Format(time.RFC3339),
	}
}
