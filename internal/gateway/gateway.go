// Package gateway is the public-facing façade. It validates header, body and
// query shape and forwards everything else verbatim to the server; no
// business logic lives here.
package gateway

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gopkg.in/yaml.v3"

	"shareit/internal/platform/identity"
)

type Config struct {
	Mode      string `yaml:"mode"`
	Listen    string `yaml:"listen"`
	ServerURL string `yaml:"server_url"`
}

func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:9090"
	}
	return &cfg, nil
}

type Handler struct {
	client *Client
}

func RegisterRoutes(r gin.IRoutes, client *Client) {
	h := &Handler{client: client}

	r.POST("/users", h.CreateUser)
	r.PATCH("/users/:userId", h.UpdateUser)
	r.GET("/users/:userId", h.GetUser)
	r.DELETE("/users/:userId", h.DeleteUser)

	r.POST("/items", identity.Require(), h.CreateItem)
	r.PATCH("/items/:itemId", identity.Require(), h.UpdateItem)
	r.GET("/items/search", h.SearchItems)
	r.GET("/items/:itemId", identity.Require(), h.GetItem)
	r.GET("/items", identity.Require(), h.ListItems)
	r.POST("/items/:itemId/comment", identity.Require(), h.CreateComment)

	r.POST("/bookings", identity.Require(), h.CreateBooking)
	r.PATCH("/bookings/:bookingId", identity.Require(), h.ApproveBooking)
	r.GET("/bookings/owner", identity.Require(), h.ListBookingsForOwner)
	r.GET("/bookings/:bookingId", identity.Require(), h.GetBooking)
	r.GET("/bookings", identity.Require(), h.ListBookingsForBooker)

	r.POST("/requests", identity.Require(), h.CreateRequest)
	r.GET("/requests/all", identity.Require(), h.ListOtherRequests)
	r.GET("/requests/:requestId", h.GetRequest)
	r.GET("/requests", identity.Require(), h.ListOwnRequests)
}

// forward relays the call to the server and writes its response verbatim.
func (h *Handler) forward(c *gin.Context, path string, body any) {
	status, data, err := h.client.Do(
		c.Request.Context(),
		c.Request.Method,
		path,
		c.Request.URL.Query(),
		identity.CallerID(c),
		c.GetHeader("X-Request-Id"),
		body,
	)
	if err != nil {
		c.JSON(502, bodyFor(err))
		return
	}
	if len(data) == 0 {
		c.Status(status)
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}
