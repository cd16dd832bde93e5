package outbox

import (
	"context"
)

// Runner owns a relay loop and its publisher. The publisher is closed only
// after the loop has returned, never under an in-flight publish.
type Runner struct {
	relay  *Relay
	cancel context.CancelFunc
	done   chan struct{}
}

func Start(relay *Relay) *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Runner{relay: relay, cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(r.done)
		relay.Run(ctx)
	}()
	return r
}

// Stop cancels the loop and waits for it. When ctx ends first the publisher
// is closed in the background once the loop exits, and ctx's error is returned.
func (r *Runner) Stop(ctx context.Context) error {
	r.cancel()
	select {
	case <-r.done:
		return r.relay.publisher.Close()
	case <-ctx.Done():
		go func() {
			<-r.done
			_ = r.relay.publisher.Close()
		}()
		return ctx.Err()
	}
}
