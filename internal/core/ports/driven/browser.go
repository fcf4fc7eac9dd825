package driven

import "context"

// Browser opens URLs with the operating system default handler.
type Browser interface {
	// Open launches the handler for url. It returns once the handler
	// process has started; it does not wait for it to exit.
	Open(ctx context.Context, url string) error
}
