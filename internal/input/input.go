// Package input turns raw key events into per-frame game input.
package input

import (
	"bufio"
	"sync"
	"time"
)

// keyHoldDuration is how long a key counts as held after its last byte.
// Terminals only report key repeats, never releases.
const keyHoldDuration = 60 * time.Millisecond

// Frame is the input for one frame.
type Frame struct {
	Quit  bool // Window close, Escape, q or Ctrl-C
	Fire  int  // Discrete fire presses this frame; one bullet each
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

// keyState tracks the last time each held key was seen.
type keyState struct {
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
}

// escapeTimeout is how long a trailing ESC waits for the rest of an arrow
// sequence before it counts as the Escape key.
const escapeTimeout = 30 * time.Millisecond

// Stream decodes terminal bytes delivered over a channel.
type Stream struct {
	ch        chan byte
	done      chan struct{}
	closeOnce sync.Once
	state     keyState
	closed    bool

	// Escape sequence cut off at the end of the last poll
	pending      []byte
	pendingSince time.Time
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128), done: make(chan struct{})}
}

// StartStream spawns a goroutine that reads from r and forwards bytes to the
// stream. The stream reports Quit once r is exhausted. Close stops the
// forwarding.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Close stops forwarding input once the game no longer polls. It is safe to
// call more than once.
func (s *Stream) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Poll drains all pending bytes without blocking and returns the frame input.
func (s *Stream) Poll() Frame {
	return s.PollAt(time.Now())
}

// PollAt is Poll with an explicit clock.
func (s *Stream) PollAt(now time.Time) Frame {
	buf := append([]byte(nil), s.pending...)
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	hadPending := len(s.pending) > 0
	flush := s.closed || (hadPending && now.Sub(s.pendingSince) >= escapeTimeout)
	f, rest := s.state.apply(buf, now, flush)

	if len(rest) > 0 && (!hadPending || len(rest) < len(buf)) {
		s.pendingSince = now
	}
	s.pending = append(s.pending[:0], rest...)

	if s.closed {
		f.Quit = true
	}
	return f
}

// apply updates held-key timestamps from buf and returns the resulting frame.
// An escape sequence cut off at the end of buf is returned unconsumed unless
// flush is set, in which case a lone ESC counts as the Escape key.
func (k *keyState) apply(buf []byte, now time.Time, flush bool) (Frame, []byte) {
	var f Frame
	var rest []byte

scan:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			if !flush && partialEscape(buf[i:]) {
				rest = buf[i:]
				break scan
			}
			// CSI (ESC [) or SS3 (ESC O) arrow sequences; a bare ESC quits.
			if i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				if k.arrow(buf[i+2], now) {
					i += 2
					continue
				}
			}
			if i+1 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				// Unknown or truncated sequence: skip the introducer.
				i++
				continue
			}
			f.Quit = true
			continue
		}

		switch b {
		case 'q', 'Q', '\x03':
			f.Quit = true
		case ' ':
			f.Fire++
		case 'a', 'A':
			k.left = now
		case 'd', 'D':
			k.right = now
		case 'w', 'W':
			k.up = now
		case 's', 'S':
			k.down = now
		}
	}

	f.Left = now.Sub(k.left) < keyHoldDuration
	f.Right = now.Sub(k.right) < keyHoldDuration
	f.Up = now.Sub(k.up) < keyHoldDuration
	f.Down = now.Sub(k.down) < keyHoldDuration
	return f, rest
}

// partialEscape reports whether seq, starting at ESC, may still grow into an
// arrow sequence: a lone ESC or ESC followed only by an introducer.
func partialEscape(seq []byte) bool {
	switch len(seq) {
	case 1:
		return true
	case 2:
		return seq[1] == '[' || seq[1] == 'O'
	default:
		return false
	}
}

// arrow records an arrow key final byte and reports whether it was one.
func (k *keyState) arrow(code byte, now time.Time) bool {
	switch code {
	case 'A':
		k.up = now
	case 'B':
		k.down = now
	case 'C':
		k.right = now
	case 'D':
		k.left = now
	default:
		return false
	}
	return true
}
