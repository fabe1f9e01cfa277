package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/logging"
	"github.com/barkhq/barksound/internal/ports"
)

var (
	// ErrCoordinatorNotStarted is returned for inputs sent before Start
	ErrCoordinatorNotStarted = errors.New("sound list coordinator not started")
	// ErrCoordinatorStopped is returned once the Start context ended
	ErrCoordinatorStopped = errors.New("sound list coordinator stopped")
	// ErrStaleCell is returned by RequestCopy on a cell from a replaced snapshot
	ErrStaleCell = errors.New("asset cell belongs to a replaced snapshot")
)

// ListState is the lifecycle of the coordinator's catalog
type ListState int32

const (
	ListStateUnstarted ListState = iota
	ListStateLoading
	ListStateReady
)

func (s ListState) String() string {
	switch s {
	case ListStateLoading:
		return "loading"
	case ListStateReady:
		return "ready"
	default:
		return "unstarted"
	}
}

type eventKind int

const (
	eventLoad eventKind = iota
	eventSelect
	eventImport
	eventDelete
	eventCopy
)

func (k eventKind) String() string {
	return [...]string{"load", "select", "import", "delete", "copy"}[k]
}

type event struct {
	cell   *AssetCell
	done   chan struct{}
	item   domain.SoundListItem
	kind   eventKind
	source string
}

// CatalogUpdate is one published snapshot plus the per-asset cells that are
// live until the next update.
type CatalogUpdate struct {
	Generation uint64
	Snapshot   domain.CatalogSnapshot

	cells map[string]*AssetCell
}

// Cell returns the live cell for asset, nil when the asset is not part of
// this update.
func (u CatalogUpdate) Cell(asset domain.SoundAsset) *AssetCell {
	return u.cells[asset.Path]
}

// AssetCell is the per-row handle of one asset in one snapshot
type AssetCell struct {
	Asset domain.SoundAsset

	cancelled chan struct{}
	owner     *SoundListCoordinator
}

// RequestCopy asks for the asset's display name to be copied. It blocks until
// the coordinator handled the request.
func (c *AssetCell) RequestCopy() error {
	if c.Cancelled() {
		return ErrStaleCell
	}
	return c.owner.submit(context.Background(), event{kind: eventCopy, cell: c})
}

// Cancelled reports whether a newer snapshot replaced this cell
func (c *AssetCell) Cancelled() bool {
	select {
	case <-c.cancelled:
		return true
	default:
		return false
	}
}

// SoundListCoordinator turns user input into catalog snapshots and side-effect
// requests. A single dispatcher goroutine owns the current snapshot and
// processes events in arrival order.
type SoundListCoordinator struct {
	catalog   *CatalogService
	events    chan event
	mirrorLog ports.MirrorLog
	startOnce sync.Once
	state     atomic.Int32
	stopped   chan struct{}
	store     ports.SoundFileStore

	catalogUpdates *Broadcaster[CatalogUpdate]
	copyNames      *Broadcaster[string]
	pickerRequests *Broadcaster[struct{}]
	playRequests   *Broadcaster[domain.AudioHandle]

	// owned by the dispatcher
	cells      map[string]*AssetCell
	generation uint64
}

// NewSoundListCoordinator creates a coordinator. mirrorLog may be nil, in
// which case divergences are only logged.
func NewSoundListCoordinator(
	store ports.SoundFileStore,
	catalog *CatalogService,
	mirrorLog ports.MirrorLog,
) *SoundListCoordinator {
	return &SoundListCoordinator{
		catalog:        catalog,
		catalogUpdates: NewReplayBroadcaster[CatalogUpdate]("catalog"),
		copyNames:      NewBroadcaster[string]("copy-names"),
		events:         make(chan event, 16),
		mirrorLog:      mirrorLog,
		pickerRequests: NewBroadcaster[struct{}]("picker-requests"),
		playRequests:   NewBroadcaster[domain.AudioHandle]("play-requests"),
		stopped:        make(chan struct{}),
		store:          store,
	}
}

// Start launches the dispatcher, which performs the initial load before any
// queued input. The coordinator stops when ctx ends. Calling Start more than
// once has no effect.
func (c *SoundListCoordinator) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		c.state.Store(int32(ListStateLoading))
		go c.run(ctx)
	})
}

// State returns the current lifecycle state
func (c *SoundListCoordinator) State() ListState {
	return ListState(c.state.Load())
}

// Catalog subscribes to catalog updates. The latest update, if any, is
// delivered first without rebuilding.
func (c *SoundListCoordinator) Catalog() *Subscription[CatalogUpdate] {
	return c.catalogUpdates.Subscribe()
}

// Latest returns the most recent update without subscribing
func (c *SoundListCoordinator) Latest() (CatalogUpdate, bool) {
	return c.catalogUpdates.Latest()
}

// PlayRequests subscribes to audio handles of selected assets
func (c *SoundListCoordinator) PlayRequests() *Subscription[domain.AudioHandle] {
	return c.playRequests.Subscribe()
}

// PickerRequests subscribes to requests to open the import file picker
func (c *SoundListCoordinator) PickerRequests() *Subscription[struct{}] {
	return c.pickerRequests.Subscribe()
}

// CopyNames subscribes to display names that should go to the clipboard
func (c *SoundListCoordinator) CopyNames() *Subscription[string] {
	return c.copyNames.Subscribe()
}

// Snapshot waits for the first catalog update and returns its snapshot
func (c *SoundListCoordinator) Snapshot(ctx context.Context) (domain.CatalogSnapshot, error) {
	if c.State() == ListStateUnstarted {
		return domain.CatalogSnapshot{}, ErrCoordinatorNotStarted
	}

	sub := c.Catalog()
	defer sub.Close()

	select {
	case update, ok := <-sub.C:
		if !ok {
			return domain.CatalogSnapshot{}, ErrCoordinatorStopped
		}
		return update.Snapshot, nil
	case <-ctx.Done():
		return domain.CatalogSnapshot{}, ctx.Err()
	}
}

// Select routes a tapped item: assets become play requests, the sentinel
// becomes a picker request.
func (c *SoundListCoordinator) Select(ctx context.Context, item domain.SoundListItem) error {
	return c.submit(ctx, event{kind: eventSelect, item: item})
}

// Import saves sourcePath into the custom sounds and rebuilds the catalog.
// Store failures are not returned; the catalog simply does not change.
func (c *SoundListCoordinator) Import(ctx context.Context, sourcePath string) error {
	return c.submit(ctx, event{kind: eventImport, source: sourcePath})
}

// Delete removes a custom asset and rebuilds the catalog. Default sounds and
// the sentinel are left alone.
func (c *SoundListCoordinator) Delete(ctx context.Context, item domain.SoundListItem) error {
	return c.submit(ctx, event{kind: eventDelete, item: item})
}

// submit enqueues ev and waits until the dispatcher processed it
func (c *SoundListCoordinator) submit(ctx context.Context, ev event) error {
	if c.State() == ListStateUnstarted {
		return ErrCoordinatorNotStarted
	}

	ev.done = make(chan struct{})
	select {
	case c.events <- ev:
	case <-ctx.Done():
		return ctx.Err()
	case <-c.stopped:
		return ErrCoordinatorStopped
	}

	select {
	case <-ev.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-c.stopped:
		return ErrCoordinatorStopped
	}
}

func (c *SoundListCoordinator) run(ctx context.Context) {
	defer c.shutdown()

	c.handle(ctx, event{kind: eventLoad})

	for {
		select {
		case <-ctx.Done():
			logging.Logger.Debug("Sound list coordinator stopping", "reason", ctx.Err())
			return
		case ev := <-c.events:
			c.handle(ctx, ev)
			if ev.done != nil {
				close(ev.done)
			}
		}
	}
}

func (c *SoundListCoordinator) handle(ctx context.Context, ev event) {
	logging.Logger.Debug("Handling event", "kind", ev.kind.String(), "item", ev.item.String())

	switch ev.kind {
	case eventLoad:
		c.rebuild()
	case eventSelect:
		ev.item.Match(
			func(asset domain.SoundAsset) { c.playRequests.Publish(asset.Audio) },
			func() { c.pickerRequests.Publish(struct{}{}) },
		)
	case eventImport:
		c.handleMirrorResult(ctx, c.store.Save(ev.source))
		c.rebuild()
	case eventDelete:
		c.delete(ctx, ev.item)
		c.rebuild()
	case eventCopy:
		if ev.cell.Cancelled() {
			logging.Logger.Debug("Ignoring copy from stale cell", "sound", ev.cell.Asset.FileName)
			return
		}
		c.copyNames.Publish(ev.cell.Asset.Name)
	}
}

func (c *SoundListCoordinator) delete(ctx context.Context, item domain.SoundListItem) {
	item.Match(
		func(asset domain.SoundAsset) {
			if asset.ReadOnly() {
				logging.Logger.Info("Default sounds cannot be deleted", "sound", asset.FileName)
				return
			}
			c.handleMirrorResult(ctx, c.store.Delete(asset.Path))
		},
		func() {
			logging.Logger.Debug("Ignoring delete of the import entry")
		},
	)
}

// handleMirrorResult inspects each step of a store mutation. Nothing here is
// surfaced to subscribers.
func (c *SoundListCoordinator) handleMirrorResult(ctx context.Context, result domain.MirrorResult) {
	switch {
	case result.Err() != nil:
		logging.Logger.Warn("Sound operation failed, catalog unchanged",
			"op", result.Op, "sound", result.FileName, "error", result.Err())
	case result.Diverged():
		logging.Logger.Warn("Shared sound directory out of sync",
			"op", result.Op, "sound", result.FileName, "error", result.Shared)
		c.recordDivergence(ctx, result)
	default:
		logging.Logger.Debug("Sound operation completed", "op", result.Op, "sound", result.FileName)
	}
}

func (c *SoundListCoordinator) recordDivergence(ctx context.Context, result domain.MirrorResult) {
	if c.mirrorLog == nil {
		return
	}

	entry := domain.MirrorEvent{
		Error:    result.Shared.Error(),
		FileName: result.FileName,
		Op:       result.Op,
	}
	if err := c.mirrorLog.Record(ctx, entry); err != nil {
		logging.Logger.Warn("Failed to record mirror divergence", "sound", result.FileName, "error", err)
	}
}

// rebuild enumerates the directories, swaps the cell set and publishes
func (c *SoundListCoordinator) rebuild() {
	snapshot := c.catalog.Build()

	for _, cell := range c.cells {
		close(cell.cancelled)
	}
	cells := make(map[string]*AssetCell)
	for _, asset := range snapshot.Assets() {
		cells[asset.Path] = &AssetCell{
			Asset:     asset,
			cancelled: make(chan struct{}),
			owner:     c,
		}
	}
	c.cells = cells
	c.generation++

	c.state.Store(int32(ListStateReady))
	c.catalogUpdates.Publish(CatalogUpdate{
		Generation: c.generation,
		Snapshot:   snapshot,
		cells:      cells,
	})
	logging.Logger.Debug("Catalog published", "generation", c.generation)
}

func (c *SoundListCoordinator) shutdown() {
	close(c.stopped)
	for _, cell := range c.cells {
		close(cell.cancelled)
	}
	c.cells = nil

	c.catalogUpdates.Close()
	c.copyNames.Close()
	c.pickerRequests.Close()
	c.playRequests.Close()
}
