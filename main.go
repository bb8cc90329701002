package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	log "gopkg.in/inconshreveable/log15.v2"
	"gopkg.in/inconshreveable/log15.v2/stack"

	"github.com/gothyra/adventure/pkg/area"
	"github.com/gothyra/adventure/pkg/client"
	"github.com/gothyra/adventure/pkg/server"
)

func customFormat() log.Format {
	return log.FormatFunc(func(r *log.Record) []byte {
		var color = 0
		switch r.Lvl {
		case log.LvlCrit:
			color = 35
		case log.LvlError:
			color = 31
		case log.LvlWarn:
			color = 33
		case log.LvlInfo:
			color = 32
		case log.LvlDebug:
			color = 36
		}
		b := &bytes.Buffer{}
		call := stack.Call(r.CallPC[0])
		fmt.Fprintf(b, "\x1b[%dm%s\x1b[0m [%s %v] %s", color, r.Lvl, r.Time.Format("2006-01-02|15:04:05.000"), call, r.Msg)
		for i := 0; i+1 < len(r.Ctx); i += 2 {
			fmt.Fprintf(b, " %v=%v", r.Ctx[i], r.Ctx[i+1])
		}
		b.WriteByte('\n')
		return b.Bytes()
	})
}

// Flags
var (
	configFile = flag.String("config", "", "Path to server.toml (default: $ADVENTURE_STATIC/server.toml)")
	port       = flag.Int("port", 0, "Port to listen on incoming connections")
	world      = flag.String("world", "", "Name of the world to play")
	local      = flag.Bool("local", false, "Play in this terminal instead of serving ssh")
	jsonOut    = flag.Bool("json", false, "With -local, print every turn as a JSON line")
	logLevel   = flag.String("loglevel", "info", "Log level (debug, info, warn, error, crit)")
	dump       = flag.Bool("dump", false, "Print the selected world as TOML and exit")
)

func setupLogging(w *os.File, level string) error {
	lvl, err := log.LvlFromString(level)
	if err != nil {
		return err
	}

	var h log.Handler
	if isatty.IsTerminal(w.Fd()) {
		h = log.StreamHandler(colorable.NewColorable(w), customFormat())
	} else {
		h = log.StreamHandler(w, log.LogfmtFormat())
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, h))
	return nil
}

func init() {
	flag.Parse()

	// The local game owns stdout, so logs go to stderr.
	if err := setupLogging(os.Stderr, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func main() {
	staticDir := os.Getenv("ADVENTURE_STATIC")
	if len(staticDir) == 0 {
		pwd, _ := os.Getwd()
		staticDir = filepath.Join(pwd, "static")
		log.Warn("Set ADVENTURE_STATIC if you wish to configure the directory for static content")
	}
	log.Info(fmt.Sprintf("Using %s for static content", staticDir))

	if *configFile == "" {
		*configFile = filepath.Join(staticDir, "server.toml")
	}
	config, err := server.LoadConfig(*configFile)
	if err != nil {
		log.Crit(err.Error())
		os.Exit(1)
	}
	if *port != 0 {
		config.Port = *port
	}
	if *world != "" {
		config.World = *world
	}

	def, err := server.LoadWorld(staticDir, config.World)
	if err != nil {
		log.Crit(err.Error())
		os.Exit(1)
	}

	switch {
	case *dump:
		data, err := def.EncodeTOML()
		if err != nil {
			log.Crit(err.Error())
			os.Exit(1)
		}
		os.Stdout.Write(data)

	case *local:
		if err := playLocal(def, config.QuitWords, os.Stdin, os.Stdout); err != nil {
			log.Crit(err.Error())
			os.Exit(1)
		}

	default:
		if err := serve(config, def); err != nil {
			log.Crit(err.Error())
			os.Exit(1)
		}
	}
}

func playLocal(def area.Definition, quitWords []string, in io.Reader, out *os.File) error {
	var (
		w        io.Writer = out
		renderer client.Renderer
	)
	switch {
	case *jsonOut:
		renderer = client.JSON{}
	case isatty.IsTerminal(out.Fd()):
		w = colorable.NewColorable(out)
		renderer = &client.Screen{Ansi: true, Intro: def.Intro}
	default:
		renderer = &client.Screen{Intro: def.Intro}
	}

	name := os.Getenv("USER")
	if name == "" {
		name = "player"
	}
	c, err := client.New(name, w, renderer, def, quitWords)
	if err != nil {
		return err
	}

	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)
	go client.ReadLines(in, lines, done)

	return c.Play(lines, interrupted())
}

func serve(config server.Config, def area.Definition) error {
	db, err := server.NewDatabase(config.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	key, err := db.HostKey()
	if err != nil {
		return err
	}

	s := server.NewServer(config, def, key)
	err = s.ListenAndServe(interrupted())
	log.Warn("Server shutdown.")
	return err
}

// interrupted is closed on the first SIGINT or SIGTERM.
func interrupted() <-chan struct{} {
	stopCh := make(chan struct{})
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		log.Warn("Terminating...")
		close(stopCh)
	}()
	return stopCh
}
