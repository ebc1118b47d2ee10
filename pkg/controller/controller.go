// Package controller wires the page behaviours to a document: the form
// guard, the delete confirmer and the table refresher. The three are
// independent and share no state.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/shunichi-ikebuchi/finance-page/pkg/deleteconfirm"
	"github.com/shunichi-ikebuchi/finance-page/pkg/formguard"
	"github.com/shunichi-ikebuchi/finance-page/pkg/page"
	"github.com/shunichi-ikebuchi/finance-page/pkg/refresher"
)

// ErrAlreadyInitialized is returned when Init is called more than once.
var ErrAlreadyInitialized = errors.New("page controller already initialized")

// Options configures a Controller.
type Options struct {
	Window   page.Window
	Lister   refresher.Lister
	Renderer refresher.RowRenderer
	Logger   *slog.Logger
}

// Controller owns the page behaviours for one document.
type Controller struct {
	mu          sync.Mutex
	initialized bool
	logger      *slog.Logger

	guard     *formguard.Guard
	confirmer *deleteconfirm.Confirmer
	refresher *refresher.Refresher
}

// New creates a Controller.
func New(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		logger:    logger,
		guard:     formguard.New(opts.Window, logger),
		confirmer: deleteconfirm.New(opts.Window, logger),
		refresher: refresher.New(opts.Lister, opts.Renderer, logger),
	}
}

// Init attaches every behaviour to doc. It may be called once.
func (c *Controller) Init(doc *page.Document) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return ErrAlreadyInitialized
	}
	c.initialized = true

	c.guard.Attach(doc)
	c.confirmer.Attach(doc)
	c.refresher.Attach(doc)

	c.logger.Debug("Page controller initialized")
	return nil
}

// Start initializes the controller and fires the page-ready event, which
// starts the background table refresh.
func (c *Controller) Start(ctx context.Context, doc *page.Document) error {
	if err := c.Init(doc); err != nil {
		return err
	}
	doc.Ready(ctx)
	return nil
}

// Wait blocks until the table refresh started by Start has finished.
func (c *Controller) Wait() {
	c.refresher.Wait()
}
