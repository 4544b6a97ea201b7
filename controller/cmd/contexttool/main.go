package contexttool

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/anubhaparashar/mcp2/controller/api/contexttool"
	pb "github.com/anubhaparashar/mcp2/controller/gen/mcp"
	"github.com/anubhaparashar/mcp2/pkg/admin"
	"github.com/anubhaparashar/mcp2/pkg/breaker"
	"github.com/anubhaparashar/mcp2/pkg/credswatcher"
	"github.com/anubhaparashar/mcp2/pkg/flags"
	"github.com/anubhaparashar/mcp2/pkg/telemetry"
	"github.com/anubhaparashar/mcp2/pkg/tokens"
	log "github.com/sirupsen/logrus"
)

// Main executes the contexttool subcommand
func Main(args []string) {
	cmd := flag.NewFlagSet("contexttool", flag.ExitOnError)

	addr := cmd.String("addr", ":8087", "address to serve on")
	metricsAddr := cmd.String("metrics-addr", ":9997", "address to serve scrapable metrics on")
	name := cmd.String("name", "InventoryDB_Primary", "server name matched against token audiences")
	secretPath := cmd.String("token-secret-file", "", "path to the shared token signing secret")
	contextScope := cmd.String("context-scope", "db:inventory:read", "capability scope required by RequestContext")
	cacheTTL := cmd.Duration("cache-ttl", time.Minute, "how long context responses are served from cache")
	breakerThreshold := cmd.Int("breaker-threshold", 3, "consecutive failures before the circuit breaker opens")
	breakerRecovery := cmd.Duration("breaker-recovery", 30*time.Second, "how long the breaker stays open before probing")
	heartbeat := cmd.Duration("telemetry-heartbeat", 0, "publish a heartbeat frame on the system stream at this interval; zero disables")
	enablePprof := cmd.Bool("enable-pprof", false, "Enable pprof endpoints on the admin server")

	store := contexttool.NewStaticStore()
	cmd.Func("seed", "seed the context store with key=value (repeatable)", func(kv string) error {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("seed entries must be key=value, got %q", kv)
		}
		store.Set(key, []byte(value))
		return nil
	})

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

	server, publisher, _ := contexttool.NewServer(
		contexttool.Config{
			Name:         *name,
			ContextScope: *contextScope,
			CacheTTL:     *cacheTTL,
			Breaker: breaker.Config{
				FailureThreshold: *breakerThreshold,
				RecoveryTime:     *breakerRecovery,
			},
		},
		verifier,
		store,
		emitter,
	)

	if *heartbeat > 0 {
		go publishHeartbeats(watchCtx, publisher, *heartbeat)
	}

	go func() {
		log.Infof("starting gRPC server on %s", *addr)
		if err := server.Serve(lis); err != nil {
			log.Errorf("failed to start contexttool gRPC server: %s", err)
		}
	}()

	ready = true

	<-stop

	log.Infof("shutting down gRPC server on %s", *addr)
	server.GracefulStop()
	adminServer.Shutdown(context.Background())
}

// publishHeartbeats injects a frame on the "system" stream at each tick so
// telemetry subscribers have a live signal even on an idle instance.
func publishHeartbeats(ctx context.Context, publisher *contexttool.Publisher, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			publisher.Publish("system", &pb.TelemetryFrame{
				TimestampMs: now.UnixMilli(),
				Payload:     []byte("heartbeat"),
			})
		case <-ctx.Done():
			return
		}
	}
}
