package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	core_port "rent-records-service/internal/core/port"
)

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(port string,
	landlordHandler *LandlordHandler,
	roomHandler *RoomHandler,
	viewHandler *ViewHandler,
	transferHandler *TransferHandler,
	baseLogger core_port.LoggerPort) *Server {

	r := chi.NewRouter()

	r.Use(LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/landlords", func(r chi.Router) {
			r.Get("/", landlordHandler.ListLandlords)
			r.Post("/", landlordHandler.CreateLandlord)
			r.Delete("/", landlordHandler.ClearCollection)

			r.Get("/check-phone", landlordHandler.CheckPhone)
			r.Put("/selected", landlordHandler.SelectLandlord)
			r.Get("/selected", landlordHandler.GetSelectedLandlord)

			r.Patch("/{landlordID}", landlordHandler.UpdateLandlord)
			r.Delete("/{landlordID}", landlordHandler.RemoveLandlord)
			r.Post("/{targetID}/merge/{sourceID}", landlordHandler.MergeLandlords)

			r.Post("/{landlordID}/rooms", roomHandler.AddRoom)
			r.Patch("/{landlordID}/rooms/{roomID}", roomHandler.UpdateRoom)
			r.Delete("/{landlordID}/rooms/{roomID}", roomHandler.RemoveRoom)
		})

		r.Get("/properties", viewHandler.ListProperties)
		r.Get("/map/groups", viewHandler.GetMapGroups)
		r.Get("/stats", viewHandler.GetStats)

		r.Get("/export/xlsx", transferHandler.ExportXLSX)
		r.Get("/export/json", transferHandler.ExportJSON)
		r.Post("/import", transferHandler.Import)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
