package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/router"
	"github.com/danielhkuo/quickly-vote/voting"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Restore the election, or create it on first start
	store := db.NewStore(dbConn)
	election, rec, err := store.OpenElection(context.Background(), cfg.ElectionID, voting.Identity(cfg.AdminIdentity),
		voting.WithLogger(slog.Default()))
	if err != nil {
		slog.Error("failed to open election", "error", err)
		os.Exit(1)
	}
	slog.Info("Election ready",
		"election_id", rec.ID,
		"admin", rec.Admin,
		"status", election.Status().String(),
		"events", len(election.Events(0)),
	)

	unsubscribe := election.Subscribe(func(ev voting.Event) {
		slog.Info("election event",
			"seq", ev.Seq,
			"kind", ev.Kind,
			"voter", ev.Voter,
			"proposal_id", ev.ProposalID,
			"next", ev.Next.String(),
		)
	})
	defer unsubscribe()

	// Create router
	mux := router.NewRouter(election, rec.ID, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
