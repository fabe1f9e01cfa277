package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/barkhq/barksound/internal/domain"
	"github.com/barkhq/barksound/internal/ports"
)

// defaultEventLimit caps Events when the caller passes a non-positive limit
const defaultEventLimit = 50

// MirrorService reports on the relationship between the primary and shared
// sound directories
type MirrorService struct {
	log    ports.MirrorLog
	store  ports.SoundFileStore
	suffix string
}

// NewMirrorService creates a new MirrorService. log may be nil.
func NewMirrorService(store ports.SoundFileStore, log ports.MirrorLog) *MirrorService {
	return &MirrorService{
		log:    log,
		store:  store,
		suffix: domain.SoundSuffix,
	}
}

// Report lists both directories concurrently and compares file names.
// Listing goes through the store, so a missing primary or shared directory is
// created on the way, like any other first access.
func (s *MirrorService) Report(ctx context.Context) (domain.MirrorReport, error) {
	var primary, shared []string

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		files, err := s.store.ListFiles(s.store.PrimaryDir(), s.suffix)
		if err != nil {
			return fmt.Errorf("list primary sounds: %w", err)
		}
		primary = baseNames(files)
		return nil
	})
	g.Go(func() error {
		files, err := s.store.ListFiles(s.store.SharedDir(), s.suffix)
		if err != nil {
			return fmt.Errorf("list shared sounds: %w", err)
		}
		shared = baseNames(files)
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.MirrorReport{}, err
	}

	return compareNames(primary, shared), nil
}

// Events returns recorded divergences, newest first
func (s *MirrorService) Events(ctx context.Context, limit int) ([]domain.MirrorEvent, error) {
	if s.log == nil {
		return nil, errors.New("mirror log not configured")
	}
	if limit <= 0 {
		limit = defaultEventLimit
	}
	return s.log.List(ctx, limit)
}

func baseNames(paths []string) []string {
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	return names
}

func compareNames(primary, shared []string) domain.MirrorReport {
	inShared := make(map[string]bool, len(shared))
	for _, name := range shared {
		inShared[name] = true
	}

	report := domain.MirrorReport{
		InSync:      []string{},
		PrimaryOnly: []string{},
		SharedOnly:  []string{},
	}
	inPrimary := make(map[string]bool, len(primary))
	for _, name := range primary {
		inPrimary[name] = true
		if inShared[name] {
			report.InSync = append(report.InSync, name)
		} else {
			report.PrimaryOnly = append(report.PrimaryOnly, name)
		}
	}
	for _, name := range shared {
		if !inPrimary[name] {
			report.SharedOnly = append(report.SharedOnly, name)
		}
	}

	sort.Strings(report.InSync)
	sort.Strings(report.PrimaryOnly)
	sort.Strings(report.SharedOnly)
	return report
}
