// Command kyvi-server runs the networked key-value store: it binds a TCP
// listener, replays an optional data file, serves connections through a
// fixed worker pool, and snapshots back to that file on a termination
// signal.
//
// Flag parsing follows the stdlib flag package with a custom flag.Usage,
// -v/-debug wired to log.RootLogger.Level, and a die helper that prints its
// message to stderr and exits with status 1.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/rsms/go-log"

	"github.com/shinkou/kyvi/server"
	"github.com/shinkou/kyvi/store"
)

const version = "kyvi-server 0.1.0"

var (
	optBind    string
	optThPool  int
	optVerbose bool
	optDebug   bool
	optVersion bool
	optHelp    bool
)

func parseopts() string {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [datafile]\noptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&optBind, "b", "0.0.0.0:6379", "Address to bind and listen on")
	flag.StringVar(&optBind, "bind", "0.0.0.0:6379", "Address to bind and listen on")
	flag.IntVar(&optThPool, "t", 64, "Worker pool size")
	flag.IntVar(&optThPool, "thpool", 64, "Worker pool size")
	flag.BoolVar(&optVerbose, "v", false, "Verbose logging")
	flag.BoolVar(&optDebug, "debug", false, "Debug logging (implies -v)")
	flag.BoolVar(&optVersion, "version", false, `Print "`+version+`" and exit`)
	flag.BoolVar(&optHelp, "h", false, "Show help and exit")
	flag.BoolVar(&optHelp, "help", false, "Show help and exit")
	flag.Parse()

	if optVersion {
		println(version)
		os.Exit(0)
	}
	if optHelp {
		flag.Usage()
		os.Exit(0)
	}

	if optDebug {
		log.RootLogger.Level = log.LevelDebug
	} else if optVerbose {
		log.RootLogger.Level = log.LevelInfo
	} else {
		log.RootLogger.Level = log.LevelWarn
	}
	log.RootLogger.SetWriter(os.Stderr)

	var datafile string
	if args := flag.Args(); len(args) > 0 {
		datafile = args[0]
	}
	return datafile
}

func die(format string, arg ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: "+format+"\n", append([]interface{}{os.Args[0]}, arg...)...)
	os.Exit(1)
}

func main() {
	datafile := parseopts()

	st := store.New()
	if datafile != "" {
		server.Replay(st, datafile)
	}

	ln, err := net.Listen("tcp", optBind)
	if err != nil {
		die("listen %s: %v", optBind, err)
	}
	log.Info("listening on %s (pool=%d)", optBind, optThPool)

	pool := server.NewPool(st, ln, optThPool)
	go pool.Run()

	stopSignal := make(chan os.Signal, 1)
	signal.Notify(stopSignal, os.Interrupt, syscall.SIGTERM)
	<-stopSignal

	log.Info("shutting down")
	ln.Close()
	if datafile != "" {
		if err := server.Snapshot(st, datafile); err != nil {
			log.Warn("snapshot %q: %v", datafile, err)
			os.Exit(1)
		}
	}
}
