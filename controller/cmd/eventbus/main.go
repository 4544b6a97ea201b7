package eventbus

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/anubhaparashar/mcp2/controller/api/eventbus"
	"github.com/anubhaparashar/mcp2/pkg/admin"
	"github.com/anubhaparashar/mcp2/pkg/credswatcher"
	"github.com/anubhaparashar/mcp2/pkg/flags"
	"github.com/anubhaparashar/mcp2/pkg/telemetry"
	"github.com/anubhaparashar/mcp2/pkg/tokens"
	log "github.com/sirupsen/logrus"
)

// Main executes the eventbus subcommand
func Main(args []string) {
	cmd := flag.NewFlagSet("eventbus", flag.ExitOnError)

	addr := cmd.String("addr", ":8088", "address to serve on")
	metricsAddr := cmd.String("metrics-addr", ":9998", "address to serve scrapable metrics on")
	name := cmd.String("name", "EventBusServer", "server name matched against token audiences")
	secretPath := cmd.String("token-secret-file", "", "path to the shared token signing secret")
	enablePprof := cmd.Bool("enable-pprof", false, "Enable pprof endpoints on the admin server")

	flags.ConfigureAndParse(cmd, args)

	secret, err := tokens.LoadSecret(*secretPath)
	if err != nil {
		log.Fatalf("Failed to load token secret: %s", err)
	}
	verifier := tokens.NewVerifier(secret)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	watchCtx, watchCancel := context.WithCancel(context.Background())
	defer watchCancel()
	credswatcher.WatchSigningSecret(watchCtx, *secretPath, verifier)

	emitter := telemetry.NewEmitter(&telemetry.LogSink{Log: log.WithField("component", "telemetry")}, 512)
	defer emitter.Close()

	ready := false
	adminServer := admin.NewServer(*metricsAddr, *enablePprof, &ready)

	go func() {
		log.Infof("starting admin server on %s", *metricsAddr)
		if err := adminServer.ListenAndServe(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Infof("Admin server closed (%s)", *metricsAddr)
			} else {
				log.Errorf("Admin server error (%s): %s", *metricsAddr, err)
			}
		}
	}()

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %s", *addr, err)
	}

	server, _ := eventbus.NewServer(*name, verifier, emitter)

	go func() {
		log.Infof("starting gRPC server on %s", *addr)
		if err := server.Serve(lis); err != nil {
			log.Errorf("failed to start eventbus gRPC server: %s", err)
		}
	}()

	ready = true

	<-stop

	log.Infof("shutting down gRPC server on %s", *addr)
	server.GracefulStop()
	adminServer.Shutdown(context.Background())
}
