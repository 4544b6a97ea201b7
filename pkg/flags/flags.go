package flags

import (
	"flag"
	"fmt"
	"os"

	"github.com/anubhaparashar/mcp2/pkg/version"
	log "github.com/sirupsen/logrus"
)

// ConfigureAndParse adds flags that are common to all go processes. This
// func calls cmd.Parse(), so it should be called after all other flags have
// been configured.
func ConfigureAndParse(cmd *flag.FlagSet, args []string) {
	logLevel := cmd.String("log-level", log.InfoLevel.String(),
		"log level, must be one of: panic, fatal, error, warn, info, debug, trace")
	logFormat := cmd.String("log-format", "plain",
		"log format, must be one of: plain, json")
	printVersion := cmd.Bool("version", false, "print version and exit")

	cmd.Parse(args)

	setLogLevel(*logLevel)
	setLogFormat(*logFormat)
	maybePrintVersionAndExit(*printVersion)
}

func setLogLevel(logLevel string) {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Fatalf("invalid log-level: %s", logLevel)
	}
	log.SetLevel(level)
}

func setLogFormat(format string) {
	switch format {
	case "plain":
		// logrus's default text formatter
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.Fatalf("invalid log-format: %s", format)
	}
}

func maybePrintVersionAndExit(printVersion bool) {
	if printVersion {
		fmt.Println(version.Version)
		os.Exit(0)
	}
	log.Infof("running version %s", version.Version)
}
