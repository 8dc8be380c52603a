package console

import (
	"crypto/md5"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/example/myplugin/pkg/chat"
)

// ConsoleName is the name the server console uses as a command sender.
const ConsoleName = "CONSOLE"

// ConsoleSender writes messages to a terminal, rendering colour codes.
type ConsoleSender struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

func NewConsoleSender(w io.Writer, color bool) *ConsoleSender {
	return &ConsoleSender{w: w, color: color}
}

func (s *ConsoleSender) Name() string {
	return ConsoleName
}

func (s *ConsoleSender) SendMessage(text string) {
	if s.color {
		text = chat.ToANSI(text)
	} else {
		text = chat.Strip(text)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, text)
}

// PlayerSender is an in-memory player. Messages it receives are recorded
// and, when Out is set, echoed as "[name] text".
type PlayerSender struct {
	name string
	id   uuid.UUID
	out  io.Writer

	mu   sync.Mutex
	msgs []string
}

// OfflineUUID derives the identity an offline-mode server assigns to name:
// a version 3 UUID over "OfflinePlayer:"+name with no namespace prefix.
func OfflineUUID(name string) uuid.UUID {
	var id uuid.UUID
	sum := md5.Sum([]byte("OfflinePlayer:" + name))
	copy(id[:], sum[:])
	id[6] = (id[6] & 0x0f) | 0x30
	id[8] = (id[8] & 0x3f) | 0x80
	return id
}

func NewPlayerSender(name string, out io.Writer) *PlayerSender {
	return &PlayerSender{name: name, id: OfflineUUID(name), out: out}
}

func (p *PlayerSender) Name() string {
	return p.name
}

func (p *PlayerSender) UUID() uuid.UUID {
	return p.id
}

func (p *PlayerSender) SendMessage(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, text)
	if p.out != nil {
		fmt.Fprintf(p.out, "[%s] %s\n", p.name, chat.Strip(text))
	}
}

// Messages returns a copy of everything sent to the player so far.
func (p *PlayerSender) Messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.msgs...)
}
