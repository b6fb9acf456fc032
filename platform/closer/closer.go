package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/you-humble/parts-inventory/platform/logger"
)

type Func func(ctx context.Context) error

type ErrorLogger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Error(ctx context.Context, msg string, fields ...logger.Field)
}

type namedFunc struct {
	name string
	fn   Func
}

// Closer runs registered shutdown funcs in reverse order of registration.
type Closer struct {
	mu    sync.Mutex
	once  sync.Once
	log   ErrorLogger
	funcs []namedFunc
}

var global = New()

func New() *Closer {
	return &Closer{log: logger.L()}
}

func SetLogger(l ErrorLogger) { global.SetLogger(l) }

func AddNamed(name string, fn Func) { global.AddNamed(name, fn) }

func CloseAll(ctx context.Context) error { return global.CloseAll(ctx) }

func (c *Closer) SetLogger(l ErrorLogger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log = l
}

func (c *Closer) AddNamed(name string, fn Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll is idempotent; calls after the first return nil.
func (c *Closer) CloseAll(ctx context.Context) error {
	var result error

	c.once.Do(func() {
		c.mu.Lock()
		funcs := c.funcs
		c.funcs = nil
		log := c.log
		c.mu.Unlock()

		errs := make([]error, 0, len(funcs))
		for i := len(funcs) - 1; i >= 0; i-- {
			f := funcs[i]
			if err := f.fn(ctx); err != nil {
				log.Error(ctx, "failed to close resource",
					logger.String("name", f.name),
					logger.ErrorF(err),
				)
				errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
				continue
			}
			log.Info(ctx, "resource closed", logger.String("name", f.name))
		}
		result = errors.Join(errs...)
	})

	return result
}
