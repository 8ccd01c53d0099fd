//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyEsc = 1
	keyQ   = 16
)

// StartExitOnKey watches Linux evdev devices under /dev/input/event* and
// invokes onExit once when Esc or Q is pressed, so the viewer can be left
// without a network round trip.
//
// Best-effort: with no readable input devices it logs and returns.
func StartExitOnKey(ctx context.Context, log logger, onExit func()) {
	if onExit == nil {
		return
	}

	// input_event = timeval + u16 type + u16 code + s32 value;
	// the timeval width depends on the architecture.
	tvSize := int(binary.Size(unix.Timeval{}))
	eventSize := tvSize + 2 + 2 + 4

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if log != nil {
			log.Infof("input", "no evdev devices found for keyboard exit")
		}
		return
	}

	var once sync.Once
	triggerExit := func() {
		once.Do(func() {
			if log != nil {
				log.Infof("input", "exit key pressed")
			}
			onExit()
		})
	}

	for _, path := range paths {
		p := path
		go func() {
			fd, err := unix.Open(p, unix.O_RDONLY|unix.O_NONBLOCK, 0)
			if err != nil {
				return
			}
			f := os.NewFile(uintptr(fd), p)
			defer f.Close()

			buf := make([]byte, 4096)
			for {
				select {
				case <-ctx.Done():
					return
				default:
				}

				pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
				if _, pollErr := unix.Poll(pollFds, 250); pollErr != nil {
					// Device might have gone away.
					return
				}
				if pollFds[0].Revents&unix.POLLIN == 0 {
					continue
				}

				n, readErr := unix.Read(fd, buf)
				if readErr != nil {
					if readErr == unix.EAGAIN || readErr == unix.EINTR {
						continue
					}
					return
				}

				for off := 0; off+eventSize <= n; off += eventSize {
					rec := buf[off : off+eventSize]
					typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
					code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
					value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
					if typ == evKey && value == 1 && (code == keyEsc || code == keyQ) {
						triggerExit()
						// Give the viewer a moment to unwind before closing.
						time.Sleep(50 * time.Millisecond)
						return
					}
				}
			}
		}()
	}
}
