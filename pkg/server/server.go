package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"
	log "gopkg.in/inconshreveable/log15.v2"

	"github.com/gothyra/adventure/pkg/area"
	"github.com/gothyra/adventure/pkg/client"
)

type ID uint16

var (
	matchip    = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+`)
	filtername = regexp.MustCompile(`\W`) // non-words

	ErrGameFull = errors.New("this game is full")
)

// Server hosts one game session per ssh connection. Sessions share nothing
// but the world definition they are built from.
type Server struct {
	sync.RWMutex
	config        Config
	world         area.Definition
	idPool        chan ID
	privateKey    ssh.Signer
	onlineClients map[string]*client.Client
}

func NewServer(config Config, world area.Definition, hostKey ssh.Signer) *Server {
	if err := config.setDefaults(); err != nil {
		log.Warn(fmt.Sprintf("%v, using %s", err, defaultIdleTimeout))
		config.IdleTimeout = ""
		config.setDefaults()
	}

	idPool := make(chan ID, config.MaxClients)
	for id := 1; id <= config.MaxClients; id++ {
		idPool <- ID(id)
	}

	return &Server{
		config:        config,
		world:         world,
		idPool:        idPool,
		privateKey:    hostKey,
		onlineClients: make(map[string]*client.Client),
	}
}

// LoadWorld returns the world called name from the areas directory under
// staticDir. Without an areas directory only the built-in default world is
// available.
func LoadWorld(staticDir, name string) (area.Definition, error) {
	dir := filepath.Join(staticDir, "areas")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		log.Warn(fmt.Sprintf("%s does not exist, using the built-in world", dir))
		if name != "default" {
			return area.Definition{}, fmt.Errorf("world %q not found", name)
		}
		return area.Default(), nil
	}

	worlds, err := area.LoadDir(dir)
	if err != nil {
		return area.Definition{}, err
	}
	world, ok := worlds[name]
	if !ok {
		if name == "default" {
			return area.Default(), nil
		}
		return area.Definition{}, fmt.Errorf("world %q not found in %s", name, dir)
	}
	return world, nil
}

// ListenAndServe accepts ssh connections on the configured address until
// stopCh is closed.
func (s *Server) ListenAndServe(stopCh <-chan struct{}) error {
	ln, err := net.Listen("tcp", s.config.Addr())
	if err != nil {
		return err
	}
	log.Info(fmt.Sprintf("Listening for incoming connections on %s", ln.Addr()))
	if addrs, err := net.InterfaceAddrs(); err == nil {
		for _, a := range addrs {
			if ipv4 := matchip.FindString(a.String()); ipv4 != "" {
				log.Info(fmt.Sprintf(" ssh %s -p %d", ipv4, s.config.Port))
			}
		}
	}
	return s.Serve(ln, stopCh)
}

// Serve accepts connections on ln. It returns once stopCh is closed and
// every session has finished.
func (s *Server) Serve(ln net.Listener, stopCh <-chan struct{}) error {
	wg := &sync.WaitGroup{}
	defer wg.Wait()

	go func() {
		<-stopCh
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-stopCh:
				return nil
			default:
			}
			return err
		}
		wg.Add(1)
		go s.handle(conn, stopCh, wg)
	}
}

func (s *Server) handle(tcpConn net.Conn, stopCh <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()

	// unblock the handshake and every read below once the server stops
	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-stopCh:
			tcpConn.Close()
		case <-finished:
		}
	}()

	timeout := s.config.Timeout()
	tcpConn.SetDeadline(time.Now().Add(timeout))

	config := &ssh.ServerConfig{
		NoClientAuth: true,
		PublicKeyCallback: func(conn ssh.ConnMetadata, publicKey ssh.PublicKey) (*ssh.Permissions, error) {
			return nil, nil
		},
	}
	config.AddHostKey(s.privateKey)
	sshConn, chans, globalReqs, err := ssh.NewServerConn(tcpConn, config)
	if err != nil {
		log.Warn(fmt.Sprintf("new connection handshake failed (%s)", err))
		tcpConn.Close()
		return
	}
	defer sshConn.Close()
	tcpConn.SetDeadline(time.Now().Add(timeout))

	// global requests must be serviced - discard
	go ssh.DiscardRequests(globalReqs)

	name := playerName(sshConn.User())

	// get the first channel
	var c ssh.NewChannel
	select {
	case c = <-chans:
	case <-stopCh:
		return
	}
	if c == nil {
		return
	}
	// channel requests must be serviced - reject rest
	go func() {
		for c := range chans {
			c.Reject(ssh.Prohibited, "only 1 channel allowed")
		}
	}()
	// must be a 'session'
	if t := c.ChannelType(); t != "session" {
		c.Reject(ssh.UnknownChannelType, fmt.Sprintf("unknown channel type: %s", t))
		return
	}
	conn, chanReqs, err := c.Accept()
	if err != nil {
		log.Warn(fmt.Sprintf("could not accept channel (%s)", err))
		return
	}
	defer conn.Close()

	id, err := s.acquireID()
	if err != nil {
		conn.Write([]byte("This game is full.\r\n"))
		return
	}
	defer s.releaseID(id)

	if name == "" {
		name = fmt.Sprintf("player-%d", id)
	}

	pty, ok := waitForShell(chanReqs, stopCh)
	if !ok {
		return
	}
	go serviceRequests(chanReqs)

	screen := &client.Screen{Ansi: pty, Intro: s.world.Intro}
	cl, err := client.New(name, conn, screen, s.world, s.config.QuitWords)
	if err != nil {
		log.Error(fmt.Sprintf("[%s] cannot start a session: %v", name, err))
		return
	}
	s.clientLoggedIn(cl)
	defer s.clientLoggedOut(cl)

	done := make(chan struct{})
	lines := make(chan string)
	in := &idleReader{r: conn, conn: tcpConn, timeout: timeout}
	if pty {
		go client.ReadRaw(in, conn, lines, done)
	} else {
		go client.ReadLines(in, lines, done)
	}

	if err := cl.Play(lines, stopCh); err != nil {
		log.Warn(fmt.Sprintf("[%s] session aborted: %v", name, err))
	}
	close(done)

	conn.SendRequest("exit-status", false, ssh.Marshal(&struct{ Status uint32 }{0}))
}

// idleReader pushes the deadline of conn forward whenever r yields input, so
// only a player that stays silent for timeout is disconnected.
type idleReader struct {
	r       io.Reader
	conn    net.Conn
	timeout time.Duration
}

func (i *idleReader) Read(p []byte) (int, error) {
	n, err := i.r.Read(p)
	if n > 0 {
		i.conn.SetDeadline(time.Now().Add(i.timeout))
	}
	return n, err
}

// waitForShell services channel requests until the client asks for a shell.
// It reports whether a pty was requested before.
func waitForShell(reqs <-chan *ssh.Request, stopCh <-chan struct{}) (bool, bool) {
	pty := false
	for {
		select {
		case <-stopCh:
			return false, false
		case r, open := <-reqs:
			if !open {
				return false, false
			}
			switch r.Type {
			case "pty-req":
				pty = true
				r.Reply(true, nil)
			case "shell":
				// We don't accept any commands (Payload),
				// only the default shell.
				ok := len(r.Payload) == 0
				r.Reply(ok, nil)
				if ok {
					return pty, true
				}
			case "env":
				r.Reply(true, nil)
			default:
				r.Reply(false, nil)
			}
		}
	}
}

func serviceRequests(reqs <-chan *ssh.Request) {
	for r := range reqs {
		if r.Type == "window-change" {
			continue // no response
		}
		r.Reply(false, nil)
	}
}

// playerName protects against XTR (cross terminal renderering) attacks.
func playerName(sshName string) string {
	name := filtername.ReplaceAllString(sshName, "")
	maxlen := 40
	if len(name) > maxlen {
		name = name[:maxlen]
	}
	return name
}

func (s *Server) acquireID() (ID, error) {
	select {
	case id := <-s.idPool:
		return id, nil
	default:
		return 0, ErrGameFull
	}
}

func (s *Server) releaseID(id ID) {
	s.idPool <- id
}

// clientLoggedIn stores the client into an internal cache that holds all
// online clients.
func (s *Server) clientLoggedIn(c *client.Client) {
	s.Lock()
	s.onlineClients[c.Session.String()] = c
	s.Unlock()
	log.Info(fmt.Sprintf("%s joined (session %s)", c.Name, c.Session))
}

func (s *Server) clientLoggedOut(c *client.Client) {
	s.Lock()
	delete(s.onlineClients, c.Session.String())
	s.Unlock()
	log.Info(fmt.Sprintf("%s left (session %s)", c.Name, c.Session))
}

// OnlineClients returns the names of the players currently connected.
func (s *Server) OnlineClients() []string {
	s.RLock()
	defer s.RUnlock()

	online := []string{}
	for _, c := range s.onlineClients {
		online = append(online, c.Name)
	}
	sort.Strings(online)
	return online
}
