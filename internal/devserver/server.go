// Package devserver is a local backend implementing the REST contract the
// client speaks, backed by sqlite. It exists for development and for
// end-to-end tests of the client and screens.
package devserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/restodesk/internal/config"
	"github.com/zjrosen/restodesk/internal/log"
	"github.com/zjrosen/restodesk/internal/masters"
)

// Server serves every master resource under /api.
type Server struct {
	app   *fiber.App
	store *Store
	cfg   config.ServerConfig
}

// Option configures a Server.
type Option func(*serverOptions)

type serverOptions struct {
	tp trace.TracerProvider
}

// WithTracerProvider traces requests through tp instead of the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *serverOptions) { o.tp = tp }
}

// New builds the server. Requests need a bearer token signed with
// cfg.JWTSecret unless the secret is empty.
func New(cfg config.ServerConfig, store *Store, opts ...Option) *Server {
	var o serverOptions
	for _, opt := range opts {
		opt(&o)
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"message": err.Error()})
		},
	})

	var otelOpts []otelfiber.Option
	if o.tp != nil {
		otelOpts = append(otelOpts, otelfiber.WithTracerProvider(o.tp))
	}
	app.Use(otelfiber.Middleware(otelOpts...))

	s := &Server{app: app, store: store, cfg: cfg}

	api := app.Group("/api")
	if cfg.JWTSecret != "" {
		api.Use(jwtMiddleware(cfg.JWTSecret))
	} else {
		log.Warn(log.CatServer, "jwt secret empty, serving without authentication")
	}
	for _, r := range routes() {
		s.register(api, r)
	}
	return s
}

// App exposes the fiber app, for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on cfg.Addr until Shutdown.
func (s *Server) Listen() error {
	log.Info(log.CatServer, "listening", "addr", s.cfg.Addr)
	return s.app.Listen(s.cfg.Addr)
}

// Serve serves on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	return s.app.Listener(ln)
}

// Shutdown stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) register(api fiber.Router, r route) {
	list := func(c *fiber.Ctx) error { return s.list(c, r) }
	api.Get("/"+r.ListPath, list)
	if r.ListPath != r.Resource {
		api.Get("/"+r.Resource, list)
	}
	api.Post("/"+r.Resource, func(c *fiber.Ctx) error { return s.create(c, r) })
	api.Put("/"+r.Resource+"/:id", func(c *fiber.Ctx) error { return s.update(c, r) })
	api.Delete("/"+r.Resource+"/:id", func(c *fiber.Ctx) error { return s.remove(c, r) })
}

// scope derives the storage scope from the query parameters the route
// requires.
func scope(c *fiber.Ctx, sc masters.Scope) (string, error) {
	switch sc {
	case masters.ScopeHotel:
		h := c.Query("hotelid")
		if h == "" {
			return "", fiber.NewError(fiber.StatusBadRequest, "hotelid is required")
		}
		return "h=" + h, nil
	case masters.ScopeCompanyYear:
		co, yr := c.Query("companyId"), c.Query("yearId")
		if co == "" || yr == "" {
			return "", fiber.NewError(fiber.StatusBadRequest, "companyId and yearId are required")
		}
		return "c=" + co + ":y=" + yr, nil
	}
	return "", nil
}

func (s *Server) list(c *fiber.Ctx, r route) error {
	sc, err := scope(c, r.Scope)
	if err != nil {
		return err
	}
	docs, err := s.store.List(c.UserContext(), r.Resource, sc)
	if err != nil {
		log.ErrorErr(log.CatServer, "list failed", err, "resource", r.Resource)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch "+r.Singular+" list")
	}
	return c.JSON(docs)
}

func (s *Server) create(c *fiber.Ctx, r route) error {
	sc, err := scope(c, r.Scope)
	if err != nil {
		return err
	}
	doc, err := body(c)
	if err != nil {
		return err
	}
	if err := s.checkUnique(c, r, sc, doc, 0); err != nil {
		return err
	}
	saved, err := s.store.Create(c.UserContext(), r.Resource, r.KeyField, sc, doc)
	if err != nil {
		log.ErrorErr(log.CatServer, "create failed", err, "resource", r.Resource)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create "+r.Singular)
	}
	log.Debug(log.CatServer, "created", "resource", r.Resource, "id", saved[r.KeyField])
	if r.Ack {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "id": saved[r.KeyField]})
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

func (s *Server) update(c *fiber.Ctx, r route) error {
	sc, err := scope(c, r.Scope)
	if err != nil {
		return err
	}
	id, err := parseID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	doc, err := body(c)
	if err != nil {
		return err
	}
	if err := s.checkUnique(c, r, sc, doc, id); err != nil {
		return err
	}
	saved, err := s.store.Update(c.UserContext(), r.Resource, r.KeyField, sc, id, doc)
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, capitalize(r.Singular)+" not found")
	}
	if err != nil {
		log.ErrorErr(log.CatServer, "update failed", err, "resource", r.Resource)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update "+r.Singular)
	}
	return c.JSON(saved)
}

func (s *Server) remove(c *fiber.Ctx, r route) error {
	sc, err := scope(c, r.Scope)
	if err != nil {
		return err
	}
	id, err := parseID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	err = s.store.Delete(c.UserContext(), r.Resource, sc, id)
	if errors.Is(err, ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, capitalize(r.Singular)+" not found")
	}
	if err != nil {
		log.ErrorErr(log.CatServer, "delete failed", err, "resource", r.Resource)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete "+r.Singular)
	}
	return c.JSON(fiber.Map{"message": capitalize(r.Singular) + " deleted successfully"})
}

func body(c *fiber.Ctx) (Document, error) {
	var doc Document
	if err := json.Unmarshal(c.Body(), &doc); err != nil || doc == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return doc, nil
}

// checkUnique rejects doc when another record in scope shares the route's
// unique field. self is the id being updated, 0 on create.
func (s *Server) checkUnique(c *fiber.Ctx, r route, sc string, doc Document, self int64) error {
	if r.Unique == "" {
		return nil
	}
	want := strings.TrimSpace(fmt.Sprint(doc[r.Unique]))
	if want == "" || doc[r.Unique] == nil {
		return nil
	}
	existing, err := s.store.List(c.UserContext(), r.Resource, sc)
	if err != nil {
		return err
	}
	for _, e := range existing {
		if id, _ := e[r.KeyField].(float64); int64(id) == self && self != 0 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(fmt.Sprint(e[r.Unique])), want) {
			return fiber.NewError(fiber.StatusConflict, r.UniqueLabel+" already exists")
		}
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
