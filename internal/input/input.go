// Package input turns raw terminal bytes into per-frame game commands.
package input

import (
	"io"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key presses (and auto-repeat), never releases.
const keyHoldDuration = 120 * time.Millisecond

// Commands is the set of player commands sampled once per frame.
// The world keeps the current and the previous sample to detect fresh presses.
type Commands struct {
	Left    bool
	Right   bool
	Shoot   bool
	Warp    bool
	Menu    bool
	Restart bool
	Quit    bool
}

// Pressed reports whether any command is active.
func (c Commands) Pressed() bool {
	return c.Left || c.Right || c.Shoot || c.Warp || c.Menu || c.Restart || c.Quit
}

// keyState tracks the last time each command key was pressed.
type keyState struct {
	left    time.Time
	right   time.Time
	shoot   time.Time
	warp    time.Time
	menu    time.Time
	restart time.Time
	quit    time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte // unfinished escape sequence from the last drain
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The stream reports Quit once r is exhausted.
func StartStream(r io.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				s.ch <- b
			}
			if err != nil {
				close(s.ch)
				return
			}
		}
	}()
	return s
}

// Read drains all available bytes from the stream without blocking and
// returns the commands held at now.
func (s *Stream) Read(now time.Time) Commands {
	buf := append([]byte(nil), s.pending...)
	carried := len(buf)

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

	// A tail that got no continuation since the last frame is complete.
	s.pending = decode(&s.state, buf, now, len(buf) == carried)

	held := func(t time.Time) bool {
		return !t.IsZero() && now.Sub(t) < keyHoldDuration
	}
	return Commands{
		Left:    held(s.state.left),
		Right:   held(s.state.right),
		Shoot:   held(s.state.shoot),
		Warp:    held(s.state.warp),
		Menu:    held(s.state.menu),
		Restart: held(s.state.restart),
		Quit:    s.closed || held(s.state.quit),
	}
}

// decode parses buf and stamps the keys it contains with now.
// Arrow keys arrive as CSI sequences (ESC [ A..D); a lone ESC is the menu key.
// Unless final is set, an escape sequence cut off at the end of buf is left
// undecoded and returned so it can be completed by the next bytes.
func decode(state *keyState, buf []byte, now time.Time, final bool) []byte {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && !final && escapeTail(buf[i:]) {
			return append([]byte(nil), buf[i:]...)
		}

		if b == '\x1b' && i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			switch buf[i+2] {
			case 'A': // up
				state.warp = now
				i += 2
				continue
			case 'B': // down
				state.shoot = now
				i += 2
				continue
			case 'C': // right
				state.right = now
				i += 2
				continue
			case 'D': // left
				state.left = now
				i += 2
				continue
			}
		}

		applyByte(state, b, now)
	}
	return nil
}

// escapeTail reports whether tail is the start of a CSI or SS3 sequence
// with its final byte still missing.
func escapeTail(tail []byte) bool {
	return len(tail) == 1 || (len(tail) == 2 && (tail[1] == '[' || tail[1] == 'O'))
}

func applyByte(state *keyState, b byte, now time.Time) {
	switch b {
	case 'a', 'A':
		state.left = now
	case 'd', 'D':
		state.right = now
	case 's', 'S', ' ':
		state.shoot = now
	case 'w', 'W':
		state.warp = now
	case 'r', 'R':
		state.restart = now
	case 'q', 'Q', 0x03: // Ctrl+C arrives as a byte in raw mode
		state.quit = now
	case '\x1b':
		state.menu = now
	}
}
