// Package emulator is a local double of the parcel-storage REST API, for
// development and tests. It mirrors the contract the client depends on:
// bearer-guarded routes with 401/403 semantics, POST /parcels answering with
// an insertedId, tracking history, and the role endpoint. It is not the
// production backend.
package emulator

import (
	"context"
	"net/http"
	"time"

	"mirpur-express/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

const tokenTTL = 24 * time.Hour

// Server hosts the emulated API.
type Server struct {
	echo     *echo.Echo
	store    *Store
	secret   []byte
	validate *validator.Validate
	log      zerolog.Logger
}

// New wires the routes. Everything except /login requires a bearer token
// signed with secret.
func New(secret string, log zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:     e,
		store:    NewStore(),
		secret:   []byte(secret),
		validate: validator.New(),
		log:      log,
	}

	e.POST("/login", s.login)

	// echo-jwt's default answers a missing token with 400; the client
	// contract needs 401 for every rejected credential so its logout hook
	// fires.
	api := e.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey: s.secret,
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: "Missing or invalid token"})
		},
	}))
	api.POST("/parcels", s.createParcel)
	api.GET("/parcels", s.listParcels)
	api.GET("/parcels/:parcelId", s.getParcel)
	api.DELETE("/parcels/:parcelId", s.deleteParcel)
	api.PATCH("/parcels/:parcelId/status", s.updateStatus)
	api.PATCH("/parcels/assign/:parcelId", s.assignRider)
	api.POST("/trackings", s.logTracking)
	api.GET("/trackings/:trackingId", s.trackingHistory)
	api.GET("/users/role", s.userRole)

	return s
}

// Store exposes the backing store so tests and the binary can seed it.
func (s *Server) Store() *Store { return s.store }

// Handler returns the http.Handler, for httptest servers.
func (s *Server) Handler() http.Handler { return s.echo }

func (s *Server) Start(addr string) error {
	s.log.Info().Str("addr", addr).Msg("parcel emulator listening")
	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// identity reads email and role out of the verified token claims.
func (s *Server) identity(c echo.Context) (email, role string) {
	tok, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return "", ""
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ""
	}
	email, _ = claims["email"].(string)
	role, _ = claims["role"].(string)
	return email, role
}

type loginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=user rider admin"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// login issues a dev token. The production system delegates this to the
// auth provider; the emulator signs its own so the client flow works
// end to end locally.
func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}
	role := req.Role
	if role == "" {
		role = "user"
	}
	s.store.SetRole(req.Email, role)

	claims := jwt.MapClaims{
		"email": req.Email,
		"role":  role,
		"exp":   jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		c.Logger().Error("emulator.login: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to issue token"})
	}
	return c.JSON(http.StatusOK, loginResponse{Token: signed})
}

func (s *Server) createParcel(c echo.Context) error {
	var booking models.Booking
	if err := c.Bind(&booking); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if booking.TrackingID == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "trackingId is required"})
	}
	if err := s.validate.Struct(booking.ParcelRequest); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	id, err := s.store.InsertParcel(booking)
	if err != nil {
		if err == models.ErrConflict {
			return c.JSON(http.StatusConflict, models.ErrorResponse{Message: "Tracking id already exists"})
		}
		c.Logger().Error("emulator.createParcel: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to store parcel"})
	}

	s.log.Info().Str("tracking_id", booking.TrackingID).Str("inserted_id", id).Msg("parcel stored")
	return c.JSON(http.StatusCreated, map[string]any{"insertedId": id})
}

func (s *Server) listParcels(c echo.Context) error {
	email := c.QueryParam("email")
	callerEmail, role := s.identity(c)
	// Users only see their own parcels; admins may query anyone's.
	if email != callerEmail && role != "admin" {
		return c.JSON(http.StatusForbidden, models.ErrorResponse{Message: "Access denied"})
	}
	return c.JSON(http.StatusOK, s.store.ParcelsByCreator(email))
}

func (s *Server) getParcel(c echo.Context) error {
	p, err := s.store.Parcel(c.Param("parcelId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Parcel not found"})
	}
	email, role := s.identity(c)
	if p.CreatedBy != email && role != "admin" && p.RiderEmail != email {
		return c.JSON(http.StatusForbidden, models.ErrorResponse{Message: "Access denied"})
	}
	return c.JSON(http.StatusOK, p)
}

func (s *Server) deleteParcel(c echo.Context) error {
	p, err := s.store.Parcel(c.Param("parcelId"))
	if err != nil {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Parcel not found"})
	}
	email, role := s.identity(c)
	if p.CreatedBy != email && role != "admin" {
		return c.JSON(http.StatusForbidden, models.ErrorResponse{Message: "Access denied"})
	}
	if err := s.store.DeleteParcel(p.ID); err != nil {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Parcel not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

type statusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

func (s *Server) updateStatus(c echo.Context) error {
	_, role := s.identity(c)
	if role != "rider" && role != "admin" {
		return c.JSON(http.StatusForbidden, models.ErrorResponse{Message: "Access denied"})
	}

	var req statusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	err := s.store.UpdateDeliveryStatus(c.Param("parcelId"), req.Status)
	switch err {
	case nil:
		return c.JSON(http.StatusOK, map[string]any{"success": true})
	case models.ErrNotFound:
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Parcel not found"})
	case models.ErrBadStatusTransition:
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Status transition not allowed"})
	default:
		c.Logger().Error("emulator.updateStatus: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to update status"})
	}
}

type assignRiderRequest struct {
	RiderID    string `json:"riderId" validate:"required"`
	RiderName  string `json:"riderName" validate:"required"`
	RiderEmail string `json:"riderEmail" validate:"required,email"`
}

func (s *Server) assignRider(c echo.Context) error {
	_, role := s.identity(c)
	if role != "admin" {
		return c.JSON(http.StatusForbidden, models.ErrorResponse{Message: "Access denied"})
	}

	var req assignRiderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := s.validate.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}

	err := s.store.AssignRider(c.Param("parcelId"), req.RiderID, req.RiderName, req.RiderEmail)
	switch err {
	case nil:
		return c.JSON(http.StatusOK, map[string]any{"success": true})
	case models.ErrNotFound:
		return c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Parcel not found"})
	case models.ErrBadStatusTransition:
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Parcel already collected"})
	default:
		c.Logger().Error("emulator.assignRider: ", err)
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to assign rider"})
	}
}

func (s *Server) logTracking(c echo.Context) error {
	var ev models.TrackingEvent
	if err := c.Bind(&ev); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
	}
	if err := s.validate.Struct(ev); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Validation failed: " + err.Error()})
	}
	id := s.store.AppendEvent(ev)
	return c.JSON(http.StatusCreated, map[string]any{"insertedId": id})
}

func (s *Server) trackingHistory(c echo.Context) error {
	return c.JSON(http.StatusOK, s.store.Events(c.Param("trackingId")))
}

func (s *Server) userRole(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "email is required"})
	}
	return c.JSON(http.StatusOK, map[string]string{"role": s.store.Role(email)})
}
