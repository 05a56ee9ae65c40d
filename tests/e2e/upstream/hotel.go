//go:build e2e

// Package upstream is an in-memory stand-in for the hotel REST API, speaking
// the same envelope and field names.
package upstream

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	Password   = "secret123"
	signingKey = "e2e-upstream"
)

type Unit struct {
	ID       string
	Number   string
	Kind     string
	Rate     float64
	Capacity int
}

type Reservation struct {
	ID             string
	Code           string
	UnitID         string
	UserID         string
	Start          string
	End            string
	Guests         int
	Total          float64
	Status         string
	IdempotencyKey string
}

// Hotel holds the fake's state. SetAvailable and SetConflict steer the next
// availability checks and reservation creations.
type Hotel struct {
	mu           sync.Mutex
	units        map[string]Unit
	reservations []*Reservation
	accounts     map[string]gin.H
	available    bool
	conflict     bool
	createCalls  int
}

func NewHotel() *Hotel {
	h := &Hotel{}
	h.Reset()
	return h
}

func (h *Hotel) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.units = map[string]Unit{
		"u-204": {ID: "u-204", Number: "204", Kind: "doble", Rate: 100, Capacity: 2},
		"u-301": {ID: "u-301", Number: "301", Kind: "suite", Rate: 180, Capacity: 4},
	}
	h.reservations = nil
	h.accounts = map[string]gin.H{}
	h.available = true
	h.conflict = false
	h.createCalls = 0
}

func (h *Hotel) SetAvailable(v bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.available = v
}

func (h *Hotel) SetConflict(v bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conflict = v
}

func (h *Hotel) Reservations() []Reservation {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Reservation, len(h.reservations))
	for i, r := range h.reservations {
		out[i] = *r
	}
	return out
}

func (h *Hotel) CreateCalls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.createCalls
}

func (h *Hotel) Handler() http.Handler {
	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/login", h.login)
	api.POST("/auth/register", h.register)
	api.GET("/departamentos", h.listUnits)
	api.GET("/departamentos/:id", h.getUnit)
	api.GET("/departamentos/:id/disponibilidad", h.availability)

	private := api.Group("", h.requireToken)
	private.GET("/auth/me", h.me)
	private.POST("/reservas", h.createReservation)
	private.GET("/reservas/mis-reservas", h.myReservations)
	private.PUT("/reservas/:id/cancelar", h.cancel)
	return r
}

func ok(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": msg})
}

func (h *Hotel) login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Password != Password {
		fail(c, http.StatusUnauthorized, "Credenciales inválidas")
		return
	}
	userID := "user-" + strings.Split(body.Email, "@")[0]
	token, err := Token(userID, time.Hour)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ok(c, http.StatusOK, gin.H{
		"token": token,
		"usuario": gin.H{
			"_id":           userID,
			"email":         body.Email,
			"nombreUsuario": strings.Split(body.Email, "@")[0],
			"nombres":       "Ana",
			"apellidos":     "Paz",
			"rol":           "cliente",
		},
	})
}

// register keeps the account keyed by its id so /auth/me can return it.
func (h *Hotel) register(c *gin.Context) {
	var body struct {
		NombreUsuario string `json:"nombreUsuario"`
		Email         string `json:"email"`
		Nombres       string `json:"nombres"`
		Apellidos     string `json:"apellidos"`
		Cedula        string `json:"cedula"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "Datos inválidos")
		return
	}
	userID := "user-" + body.NombreUsuario

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, taken := h.accounts[userID]; taken {
		fail(c, http.StatusBadRequest, "El usuario ya existe")
		return
	}
	token, err := Token(userID, time.Hour)
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	user := gin.H{
		"_id":           userID,
		"email":         body.Email,
		"nombreUsuario": body.NombreUsuario,
		"nombres":       body.Nombres,
		"apellidos":     body.Apellidos,
		"cedula":        body.Cedula,
		"rol":           "cliente",
	}
	h.accounts[userID] = user
	ok(c, http.StatusCreated, gin.H{"token": token, "usuario": user})
}

func (h *Hotel) me(c *gin.Context) {
	userID, _ := c.Get("user")
	h.mu.Lock()
	defer h.mu.Unlock()
	user, found := h.accounts[fmt.Sprint(userID)]
	if !found {
		fail(c, http.StatusNotFound, "Usuario no encontrado")
		return
	}
	ok(c, http.StatusOK, user)
}

// Token signs a credential the way the hotel API does.
func Token(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}).SignedString([]byte(signingKey))
}

func (h *Hotel) requireToken(c *gin.Context) {
	raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) { return []byte(signingKey), nil }); err != nil {
		fail(c, http.StatusUnauthorized, "Token inválido")
		return
	}
	c.Set("user", claims["id"])
	c.Next()
}

func unitJSON(u Unit) gin.H {
	return gin.H{
		"_id":               u.ID,
		"numero":            u.Number,
		"tipo":              u.Kind,
		"piso":              2,
		"precioNoche":       u.Rate,
		"capacidadPersonas": u.Capacity,
		"numeroCamas":       1,
		"estado":            "disponible",
		"imagenes":          []gin.H{},
	}
}

func (h *Hotel) listUnits(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	kind := c.Query("tipo")
	out := []gin.H{}
	for _, id := range []string{"u-204", "u-301"} {
		u := h.units[id]
		if kind != "" && u.Kind != kind {
			continue
		}
		out = append(out, unitJSON(u))
	}
	ok(c, http.StatusOK, out)
}

func (h *Hotel) getUnit(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	u, found := h.units[c.Param("id")]
	if !found {
		fail(c, http.StatusNotFound, "Departamento no encontrado")
		return
	}
	ok(c, http.StatusOK, unitJSON(u))
}

func (h *Hotel) availability(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	ok(c, http.StatusOK, gin.H{"disponible": h.available})
}

func (h *Hotel) createReservation(c *gin.Context) {
	var body struct {
		DepartamentoID  string  `json:"departamentoId"`
		FechaInicio     string  `json:"fechaInicio"`
		FechaFin        string  `json:"fechaFin"`
		NumeroHuespedes int     `json:"numeroHuespedes"`
		Total           float64 `json:"total"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.createCalls++
	if h.conflict {
		fail(c, http.StatusConflict, "Fechas no disponibles")
		return
	}
	key := c.GetHeader("Idempotency-Key")
	for _, r := range h.reservations {
		if key != "" && r.IdempotencyKey == key {
			ok(c, http.StatusOK, reservationJSON(r))
			return
		}
	}
	res := &Reservation{
		ID:             fmt.Sprintf("r-%d", len(h.reservations)+1),
		Code:           fmt.Sprintf("RES-%04d", len(h.reservations)+1),
		UnitID:         body.DepartamentoID,
		UserID:         c.GetString("user"),
		Start:          body.FechaInicio,
		End:            body.FechaFin,
		Guests:         body.NumeroHuespedes,
		Total:          body.Total,
		Status:         "pendiente",
		IdempotencyKey: key,
	}
	h.reservations = append(h.reservations, res)
	ok(c, http.StatusCreated, reservationJSON(res))
}

func reservationJSON(r *Reservation) gin.H {
	return gin.H{
		"_id":             r.ID,
		"codigoReserva":   r.Code,
		"departamento":    r.UnitID,
		"fechaInicio":     r.Start,
		"fechaFin":        r.End,
		"numeroHuespedes": r.Guests,
		"total":           r.Total,
		"estado":          r.Status,
	}
}

func (h *Hotel) myReservations(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := []gin.H{}
	for _, r := range h.reservations {
		if r.UserID == c.GetString("user") {
			out = append(out, reservationJSON(r))
		}
	}
	ok(c, http.StatusOK, out)
}

func (h *Hotel) cancel(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.reservations {
		if r.ID == c.Param("id") && r.UserID == c.GetString("user") {
			r.Status = "cancelada"
			ok(c, http.StatusOK, reservationJSON(r))
			return
		}
	}
	fail(c, http.StatusNotFound, "Reserva no encontrada")
}
