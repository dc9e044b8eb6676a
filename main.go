package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mo-shahab/go-hockey/server/codec"
	"github.com/mo-shahab/go-hockey/server/config"
	"github.com/mo-shahab/go-hockey/server/room"
	"github.com/mo-shahab/go-hockey/server/wsserver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	wire, err := codec.New(cfg.Codec)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// the table must be playable before we accept anyone
	if _, err := cfg.NewMatch(); err != nil {
		log.Fatalf("Invalid table: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rooms := room.NewRoomManager(ctx, cfg.NewMatch, room.Options{
		Codec:       wire,
		FrameRate:   cfg.FrameRate,
		MaxClients:  cfg.MaxClients,
		IdleTimeout: cfg.IdleTimeout,
	})

	wsh := wsserver.NewWebSocketHandler(rooms, wsserver.Options{
		Codec:         wire,
		DisplayWidth:  cfg.DisplayWidth,
		DisplayHeight: cfg.DisplayHeight,
		SendQueueSize: cfg.SendQueueSize,
	})

	mux := http.NewServeMux()
	mux.Handle("/ws", wsh)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting at %s (codec %s, %d fps)", cfg.Addr, wire.Name(), cfg.FrameRate)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown: %v", err)
	}
	rooms.Shutdown()
}
